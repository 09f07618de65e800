package bnb

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a search run or a built-in container via functional
// arguments. If an Option is invalid (e.g. an unknown pruning bit), the error
// is recorded internally and surfaced as ErrOptionViolation by Solve and
// SolveWithContainer.
type Option func(*Options)

// Options holds parameters and callbacks shared by the driver loop and the
// built-in containers.
type Options struct {
	// Logger receives debug records of run start, incumbent improvements and
	// run completion. Defaults to a logger writing to io.Discard.
	Logger *log.Logger

	// Observer receives synchronous search events. Defaults to NoopObserver.
	Observer Observer

	// Pruning selects where built-in containers test candidates against the
	// incumbent. Ignored by SolveWithContainer, whose container is already
	// built. Defaults to PruneBoth.
	Pruning Pruning

	// OnPrune, if non-nil, is called by built-in containers for every item
	// they refuse or discard, with the number of items affected.
	OnPrune func(kind PruneKind, count int)

	// internal error recorded during option parsing
	err error

	// logging was requested explicitly; enables run ids
	logging bool
}

// DefaultOptions returns Options with:
//   - a discard logger
//   - NoopObserver
//   - PruneBoth
//   - no prune hook.
func DefaultOptions() Options {
	return Options{
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
		Observer: NoopObserver{},
		Pruning:  PruneBoth,
	}
}

// WithLogger routes run diagnostics to l. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
			o.logging = true
		}
	}
}

// WithObserver registers obs for search events. A nil observer keeps the default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithPruning sets the pruning policy of built-in containers.
//
//	PruneNone:   no incumbent tests, every leaf is evaluated
//	PruneOnPush: eager pruning only
//	PruneOnPop:  lazy pruning (and early stop) only
//	PruneBoth:   default
//
// Any other bit → ErrOptionViolation.
func WithPruning(p Pruning) Option {
	return func(o *Options) {
		if p&^PruneBoth != 0 {
			o.err = fmt.Errorf("%w: unknown pruning bits %#x", ErrOptionViolation, uint8(p))
			return
		}
		o.Pruning = p
	}
}

// WithPruneHook installs fn as the prune callback of built-in containers.
func WithPruneHook(fn func(kind PruneKind, count int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns the recorded
// option error, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o, o.err
}
