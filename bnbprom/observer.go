// Package bnbprom exports bnb search events as Prometheus metrics.
//
//	bnb_events_total{event}           pop | branch | solve | improve | prune_push | prune_pop | early_stop
//	bnb_abandoned_total               items dropped by early stops
//	bnb_branch_children               histogram of children per branch
//	bnb_run_duration_seconds          histogram of run wall time
//	bnb_runs_total{found}             finished runs, by whether a solution was found
//
// One Observer may be shared by sequential or concurrent runs; the
// Prometheus collectors are safe for concurrent use.
package bnbprom

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// Event label values of bnb_events_total.
const (
	EventPop       = "pop"
	EventBranch    = "branch"
	EventSolve     = "solve"
	EventImprove   = "improve"
	EventPrunePush = "prune_push"
	EventPrunePop  = "prune_pop"
	EventEarlyStop = "early_stop"
)

// Observer implements bnb.Observer on top of Prometheus collectors.
type Observer struct {
	events    *prometheus.CounterVec
	abandoned prometheus.Counter
	children  prometheus.Histogram
	duration  prometheus.Histogram
	runs      *prometheus.CounterVec
}

var _ bnb.Observer = (*Observer)(nil)

// New creates the collectors under namespace (may be empty) and registers
// them on reg. Registration errors, such as a duplicate registration, are
// returned as is.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	o := &Observer{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bnb_events_total",
			Help:      "Search events by kind",
		}, []string{"event"}),
		abandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bnb_abandoned_total",
			Help:      "Pending items dropped by early stops",
		}),
		children: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bnb_branch_children",
			Help:      "Children produced per branch",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bnb_run_duration_seconds",
			Help:      "Wall time of search runs",
			Buckets:   prometheus.DefBuckets,
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bnb_runs_total",
			Help:      "Finished search runs",
		}, []string{"found"}),
	}
	for _, c := range []prometheus.Collector{o.events, o.abandoned, o.children, o.duration, o.runs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(reg prometheus.Registerer, namespace string) *Observer {
	o, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}

	return o
}

// OnPop counts a popped node.
func (o *Observer) OnPop() { o.events.WithLabelValues(EventPop).Inc() }

// OnBranch counts a branch and observes its number of children.
func (o *Observer) OnBranch(children int) {
	o.events.WithLabelValues(EventBranch).Inc()
	o.children.Observe(float64(children))
}

// OnSolve counts a solved leaf, and an improvement when it replaced the incumbent.
func (o *Observer) OnSolve(improved bool) {
	o.events.WithLabelValues(EventSolve).Inc()
	if improved {
		o.events.WithLabelValues(EventImprove).Inc()
	}
}

// OnPrune counts an early stop once, plus its dropped items in
// bnb_abandoned_total.
func (o *Observer) OnPrune(kind bnb.PruneKind, count int) {
	switch kind {
	case bnb.PrunedOnPush:
		o.events.WithLabelValues(EventPrunePush).Add(float64(count))
	case bnb.PrunedOnPop:
		o.events.WithLabelValues(EventPrunePop).Add(float64(count))
	case bnb.EarlyStop:
		o.events.WithLabelValues(EventEarlyStop).Inc()
		o.abandoned.Add(float64(count - 1))
	}
}

// OnFinish observes the run duration and counts the run by outcome.
func (o *Observer) OnFinish(stats bnb.Stats) {
	o.duration.Observe(stats.Elapsed.Seconds())
	o.runs.WithLabelValues(strconv.FormatBool(stats.Improved > 0)).Inc()
}
