package cellgraph

// Memo is a derived cell that caches the result of its computation.
// It materializes lazily: the computation first runs on the first Get
// (or at construction under Eager). After that it recomputes only
// during propagation, when a dependency changed, and reports
// changed/unchanged per its equality predicate.
type Memo[T any] struct {
	cx *Context
	id NodeID
}

// NewMemo creates a memo cell over the given computation. Reads the
// computation performs register this memo as a dependent of the cells
// it touches.
func NewMemo[T any](cx *Context, compute func() T, opts ...CellOption) *Memo[T] {
	cfg := applyCellOptions(opts)
	n := &node{
		cx:      cx,
		name:    cfg.name,
		kind:    kindMemo,
		value:   cfg.seed,
		equals:  cfg.equals,
		compute: func() any { return compute() },
	}
	cx.register(n)

	if cfg.eager {
		n.materialized = true
		n.recompute()
	}
	return &Memo[T]{cx: cx, id: n.id}
}

// ID returns the cell's node id.
func (m *Memo[T]) ID() NodeID { return m.id }

// Name returns the diagnostic label, if any.
func (m *Memo[T]) Name() string { return m.cx.nodes[m.id].name }

// Get returns the memo's value, materializing it on first access, and
// registers the active observer as a dependent.
func (m *Memo[T]) Get() T {
	v, _ := m.cx.nodes[m.id].read().(T)
	return v
}

// Peek returns the value without registering a dependency.
func (m *Memo[T]) Peek() T {
	v, _ := m.cx.nodes[m.id].peek().(T)
	return v
}
