package cellgraph

// Lazy is a derived cell with push-dirty, pull-recompute semantics.
// When a dependency changes, propagation only marks the cell dirty and
// optimistically reports a change downstream; the computation itself
// re-runs on the next Get. Downstream cells may therefore be asked to
// recompute even when the eventual value turns out unchanged.
type Lazy[T any] struct {
	cx *Context
	id NodeID
}

// NewLazy creates a lazy derived cell over the given computation.
func NewLazy[T any](cx *Context, compute func() T, opts ...CellOption) *Lazy[T] {
	cfg := applyCellOptions(opts)
	n := &node{
		cx:      cx,
		name:    cfg.name,
		kind:    kindLazy,
		value:   cfg.seed,
		equals:  cfg.equals,
		compute: func() any { return compute() },
	}
	cx.register(n)

	if cfg.eager {
		n.peek()
	}
	return &Lazy[T]{cx: cx, id: n.id}
}

// ID returns the cell's node id.
func (l *Lazy[T]) ID() NodeID { return l.id }

// Name returns the diagnostic label, if any.
func (l *Lazy[T]) Name() string { return l.cx.nodes[l.id].name }

// Get returns the value, re-running the computation first when the
// cell is dirty or not yet materialized, and registers the active
// observer as a dependent.
func (l *Lazy[T]) Get() T {
	v, _ := l.cx.nodes[l.id].read().(T)
	return v
}

// Peek is Get without dependency registration.
func (l *Lazy[T]) Peek() T {
	v, _ := l.cx.nodes[l.id].peek().(T)
	return v
}

// Dirty reports whether the next read will re-run the computation.
func (l *Lazy[T]) Dirty() bool {
	n := l.cx.nodes[l.id]
	return n.dirty || !n.materialized
}
