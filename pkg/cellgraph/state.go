package cellgraph

// State is a writable reactive value cell with no dependencies of its
// own. Writes that the equality predicate judges different start a
// propagation cycle (or are queued under an open batch).
type State[T any] struct {
	cx *Context
	id NodeID
}

// NewState creates a state cell holding the given initial value.
func NewState[T any](cx *Context, value T, opts ...CellOption) *State[T] {
	cfg := applyCellOptions(opts)
	n := &node{
		cx:     cx,
		name:   cfg.name,
		kind:   kindState,
		value:  value,
		equals: cfg.equals,
	}
	cx.register(n)
	return &State[T]{cx: cx, id: n.id}
}

// ID returns the cell's node id.
func (s *State[T]) ID() NodeID { return s.id }

// Name returns the diagnostic label, if any.
func (s *State[T]) Name() string { return s.cx.nodes[s.id].name }

// Get returns the current value. When called inside another cell's
// computation, it registers that cell as a dependent.
func (s *State[T]) Get() T {
	v, _ := s.cx.nodes[s.id].read().(T)
	return v
}

// Peek returns the current value without registering a dependency.
func (s *State[T]) Peek() T {
	v, _ := s.cx.nodes[s.id].peek().(T)
	return v
}

// Set stores the value and reports whether it was judged different
// from the previous one. A changed write immediately runs a
// propagation cycle with this cell as the sole trigger, or queues the
// cell while a batch is open. The candidate is stored either way.
func (s *State[T]) Set(value T) bool {
	return s.cx.writeState(s.id, value)
}

// Update applies fn to the previous value and writes the result, with
// the same propagation semantics as Set.
func (s *State[T]) Update(fn func(T) T) bool {
	prev, _ := s.cx.nodes[s.id].value.(T)
	return s.cx.writeState(s.id, fn(prev))
}

// writeState performs the shared write/propagate path for state cells.
func (cx *Context) writeState(id NodeID, candidate any) bool {
	if !cx.nodes[id].write(candidate) {
		return false
	}
	if cx.batchDepth > 0 {
		cx.enqueue(id)
		cx.observeBatchedWrite()
		return true
	}
	cx.startCycle([]NodeID{id})
	return true
}
