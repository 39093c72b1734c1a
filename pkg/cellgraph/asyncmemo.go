package cellgraph

// AsyncMemo is a derived cell whose computation produces its value
// asynchronously through a Deferred. While the deferred is
// outstanding, propagation records a pending outcome for the cell and
// queues it for retry; resolving the deferred re-enters the engine and
// completes the update.
//
// The start function is invoked at most once per outstanding deferred;
// retries of a still-unresolved cell do not re-invoke it.
//
//	quote := NewAsyncMemo(cx, func(d *Deferred[float64]) {
//	    symbol := ticker.Get()
//	    go fetchQuote(symbol, d) // calls d.Resolve from the host's serialized loop
//	})
type AsyncMemo[T any] struct {
	cx *Context
	id NodeID
}

// Deferred is the single-shot future an async memo's computation fills
// in. Resolve must be called from the host's serialized context, like
// every other engine entry point.
type Deferred[T any] struct {
	core *deferredCore
}

// deferredCore is the type-erased deferred state owned by the node.
type deferredCore struct {
	cx    *Context
	id    NodeID
	done  bool
	value any
}

// Resolve completes the deferred with the given value. The first call
// wins; later calls are ignored. If the owning cell still awaits this
// deferred, resolution triggers a forced propagation cycle on it, or
// queues the cell when a batch or another cycle is in progress.
func (d *Deferred[T]) Resolve(v T) {
	d.core.resolve(v)
}

// Done reports whether the deferred has been resolved.
func (d *Deferred[T]) Done() bool {
	return d.core.done
}

func (c *deferredCore) resolve(v any) {
	if c.done {
		return
	}
	c.done = true
	c.value = v

	cx := c.cx
	n := cx.nodes[c.id]
	if n.pending != c {
		return
	}
	if cx.cycleDepth > 0 || cx.batchDepth > 0 {
		cx.enqueue(c.id)
		return
	}
	cx.startCycle([]NodeID{c.id})
}

// NewAsyncMemo creates an async derived cell. Like Memo, it
// materializes on first read unless Eager is supplied; materialization
// invokes start (tracked, so reads inside it register dependencies)
// and the cell stays pending until the Deferred resolves.
func NewAsyncMemo[T any](cx *Context, start func(d *Deferred[T]), opts ...CellOption) *AsyncMemo[T] {
	cfg := applyCellOptions(opts)
	n := &node{
		cx:     cx,
		name:   cfg.name,
		kind:   kindAsyncMemo,
		value:  cfg.seed,
		equals: cfg.equals,
	}
	n.asyncStart = func(core *deferredCore) {
		start(&Deferred[T]{core: core})
	}
	cx.register(n)

	if cfg.eager {
		n.materialized = true
		n.recompute()
	}
	return &AsyncMemo[T]{cx: cx, id: n.id}
}

// ID returns the cell's node id.
func (m *AsyncMemo[T]) ID() NodeID { return m.id }

// Name returns the diagnostic label, if any.
func (m *AsyncMemo[T]) Name() string { return m.cx.nodes[m.id].name }

// Get returns the current value: the seed (or zero value) until the
// first resolution lands. Registers the active observer as a
// dependent and materializes the cell on first access.
func (m *AsyncMemo[T]) Get() T {
	v, _ := m.cx.nodes[m.id].read().(T)
	return v
}

// Peek is Get without dependency registration.
func (m *AsyncMemo[T]) Peek() T {
	v, _ := m.cx.nodes[m.id].peek().(T)
	return v
}

// Ready reports whether the cell holds a resolved value: it has
// materialized and no deferred is outstanding.
func (m *AsyncMemo[T]) Ready() bool {
	n := m.cx.nodes[m.id]
	return n.materialized && n.pending == nil
}
