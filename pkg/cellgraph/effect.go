package cellgraph

// Effect is a side-effecting cell. Unlike memo cells it is never
// memoized for dependents: every read made from inside another cell's
// computation re-runs the effect, so effects can be stacked on top of
// effects deliberately.
//
// The wrapped function's return value drives propagation: true means
// the effect's own observers are visited, false suppresses them.
type Effect struct {
	cx *Context
	id NodeID
}

// NewEffect creates an effect cell. The function does not run at
// construction unless Eager is supplied.
func NewEffect(cx *Context, fn func() bool, opts ...CellOption) *Effect {
	cfg := applyCellOptions(opts)
	n := &node{
		cx:       cx,
		name:     cfg.name,
		kind:     kindEffect,
		value:    cfg.seed,
		equals:   cfg.equals,
		effectFn: fn,
	}
	cx.register(n)

	if cfg.eager {
		n.recompute()
	}
	return &Effect{cx: cx, id: n.id}
}

// NewEffectFunc wraps a plain side effect that always propagates.
func NewEffectFunc(cx *Context, fn func(), opts ...CellOption) *Effect {
	return NewEffect(cx, func() bool {
		fn()
		return true
	}, opts...)
}

// ID returns the cell's node id.
func (e *Effect) ID() NodeID { return e.id }

// Name returns the diagnostic label, if any.
func (e *Effect) Name() string { return e.cx.nodes[e.id].name }

// Get returns the last run's result. When called from inside another
// cell's computation it first registers the dependency and forces an
// immediate re-run of the effect.
func (e *Effect) Get() bool {
	v, _ := e.cx.nodes[e.id].read().(bool)
	return v
}

// Fire triggers the effect explicitly. Outside a batch it runs a
// propagation cycle with this effect as the forced trigger and returns
// true; under an open batch it queues the effect and returns false.
func (e *Effect) Fire() bool {
	cx := e.cx
	if cx.batchDepth > 0 {
		cx.enqueue(e.id)
		return false
	}
	cx.startCycle([]NodeID{e.id})
	return true
}
