package cellgraph

// NodeID uniquely identifies a node within its Context. IDs are
// assigned monotonically starting at 1. The zero value means "no node"
// and doubles as the untracked-observer sentinel.
type NodeID uint64

// kind tags the behavioral variant of a node.
type kind uint8

const (
	kindState kind = iota + 1
	kindMemo
	kindLazy
	kindEffect
	kindAsyncMemo
)

// String returns the kind's name, used as a metric label and in logs.
func (k kind) String() string {
	switch k {
	case kindState:
		return "state"
	case kindMemo:
		return "memo"
	case kindLazy:
		return "lazy"
	case kindEffect:
		return "effect"
	case kindAsyncMemo:
		return "async_memo"
	default:
		return "unknown"
	}
}

// node is the arena entry behind every public cell handle. Behavior is
// dispatched on the kind tag; the state specific to each kind (the
// materialization flag, the dirty flag, the outstanding deferred) lives
// in dedicated fields rather than in per-instance closures.
type node struct {
	cx   *Context
	id   NodeID
	name string
	kind kind

	value  any
	equals func(prev, next any) bool

	compute    func() any          // memo, lazy
	effectFn   func() bool         // effect
	asyncStart func(*deferredCore) // async memo

	// materialized is flipped by the first read of a derived cell (or
	// at construction under Eager); after that, recomputation happens
	// only through propagation or, for lazy cells, a dirty read.
	materialized bool

	// dirty marks a lazy cell whose computation must re-run on the
	// next read.
	dirty bool

	// pending is the outstanding deferred of an async memo, nil when
	// no resolution is in flight.
	pending *deferredCore
}

// write stores candidate as the new value regardless of the equality
// verdict and reports whether the previous and candidate values were
// judged different.
func (n *node) write(candidate any) bool {
	prev := n.value
	n.value = candidate
	return !n.equals(prev, candidate)
}

// read returns the current value, registering the active observer (if
// any) as a dependent first. Derived kinds materialize on first read;
// lazy kinds re-run their computation when dirty; effect kinds re-run
// on every tracked read.
func (n *node) read() any {
	cx := n.cx
	if obs := cx.observer; obs != 0 && obs != n.id {
		cx.connect(n.id, obs)
		if n.kind == kindEffect {
			n.recompute()
		}
	}

	switch n.kind {
	case kindMemo, kindAsyncMemo:
		if !n.materialized {
			n.materialized = true
			n.recompute()
		}
	case kindLazy:
		if n.dirty || !n.materialized {
			n.materialized = true
			n.dirty = false
			n.write(cx.tracked(n.id, n.compute))
		}
	}

	return n.value
}

// peek reads the value with observer tracking suppressed. Pull-style
// recomputation (lazy dirtiness, first materialization) still applies.
func (n *node) peek() any {
	prev := n.cx.observer
	n.cx.observer = 0
	defer func() { n.cx.observer = prev }()
	return n.read()
}

// recompute runs the kind-specific update and reports its outcome.
func (n *node) recompute() Outcome {
	cx := n.cx
	cx.observeRecompute(n.kind)

	switch n.kind {
	case kindState:
		// State nodes are only reached as forced triggers; the write
		// already happened.
		return OutcomeChanged

	case kindMemo:
		if n.write(cx.tracked(n.id, n.compute)) {
			return OutcomeChanged
		}
		return OutcomeUnchanged

	case kindLazy:
		// Push-dirty, pull-recompute: propagation only marks the cell
		// and reports an optimistic change.
		n.dirty = true
		return OutcomeChanged

	case kindEffect:
		var propagate bool
		cx.trackedRun(n.id, func() { propagate = n.effectFn() })
		n.value = propagate
		if propagate {
			return OutcomeChanged
		}
		return OutcomeUnchanged

	case kindAsyncMemo:
		core := n.pending
		if core == nil {
			core = &deferredCore{cx: cx, id: n.id}
			n.pending = core
			cx.trackedRun(n.id, func() { n.asyncStart(core) })
		}
		if !core.done {
			return OutcomePending
		}
		if n.pending != core {
			// A synchronous Resolve already ran a nested cycle that
			// consumed this deferred.
			return OutcomeUnchanged
		}
		n.pending = nil
		if n.write(core.value) {
			return OutcomeChanged
		}
		return OutcomeUnchanged
	}

	return OutcomeUnchanged
}
