package bnb

// Observer receives events from a search run. Calls are synchronous and made
// on the goroutine running the search, so implementations must be cheap.
//
// Prune events are delivered for the built-in containers, whether built by
// Solve or passed to SolveWithContainer; a container implemented outside this
// package reports them through its own hooks.
type Observer interface {
	// OnPop is called when a node leaves the container for evaluation.
	OnPop()

	// OnBranch is called after a branch has produced all its children.
	OnBranch(children int)

	// OnSolve is called for every solved leaf; improved reports whether it
	// replaced the incumbent.
	OnSolve(improved bool)

	// OnPrune is called for items refused or discarded by the container.
	OnPrune(kind PruneKind, count int)

	// OnFinish is called once with the final statistics of the run.
	OnFinish(stats Stats)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

// OnPop does nothing.
func (NoopObserver) OnPop() {}

// OnBranch does nothing.
func (NoopObserver) OnBranch(int) {}

// OnSolve does nothing.
func (NoopObserver) OnSolve(bool) {}

// OnPrune does nothing.
func (NoopObserver) OnPrune(PruneKind, int) {}

// OnFinish does nothing.
func (NoopObserver) OnFinish(Stats) {}
