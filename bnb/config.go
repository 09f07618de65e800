package bnb

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config is the declarative form of a search setup, decoded from TOML:
//
//	traversal = "best-first"   # depth-first | breadth-first | best-first
//	pruning   = "both"         # none | push | pop | both
//	log_level = "debug"        # empty disables logging
//
// The custom traversal cannot be configured here: its comparator is code.
type Config struct {
	Traversal string `toml:"traversal"`
	Pruning   string `toml:"pruning"`
	LogLevel  string `toml:"log_level"`
}

// DefaultConfig returns depth-first search with both pruning points and no
// logging.
func DefaultConfig() Config {
	return Config{
		Traversal: DepthFirst.String(),
		Pruning:   PruneBoth.String(),
	}
}

// LoadConfig decodes a TOML document from r over DefaultConfig and validates
// it. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field of c.
func (c Config) Validate() error {
	t, err := ParseTraversal(c.Traversal)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if t == Custom {
		return fmt.Errorf("%w: custom traversal needs a comparator and cannot be configured", ErrInvalidConfig)
	}
	if _, err = ParsePruning(c.Pruning); err != nil {
		return err
	}
	if c.LogLevel != "" {
		if _, err = log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Options converts c into functional options. A non-empty log level yields a
// logger on stderr at that level.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, _ := ParsePruning(c.Pruning)
	opts := []Option{WithPruning(p)}
	if c.LogLevel != "" {
		lvl, _ := log.ParseLevel(c.LogLevel)
		opts = append(opts, WithLogger(log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           lvl,
			Prefix:          "bnb",
		})))
	}

	return opts, nil
}

// MethodFromConfig returns the Method named by c.
func MethodFromConfig[N any](c Config) (Method[N], error) {
	if err := c.Validate(); err != nil {
		return Method[N]{}, err
	}
	t, _ := ParseTraversal(c.Traversal)

	return Method[N]{Traversal: t}, nil
}

// String returns the config name of p: "none", "push", "pop" or "both".
func (p Pruning) String() string {
	switch p {
	case PruneNone:
		return "none"
	case PruneOnPush:
		return "push"
	case PruneOnPop:
		return "pop"
	case PruneBoth:
		return "both"
	default:
		return fmt.Sprintf("Pruning(%#x)", uint8(p))
	}
}

// ParsePruning resolves a pruning policy by its config name. An empty name
// selects PruneBoth.
func ParsePruning(name string) (Pruning, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "both", "eager+lazy":
		return PruneBoth, nil
	case "push", "eager":
		return PruneOnPush, nil
	case "pop", "lazy":
		return PruneOnPop, nil
	case "none", "off":
		return PruneNone, nil
	default:
		return 0, fmt.Errorf("%w: unknown pruning %q", ErrInvalidConfig, name)
	}
}
