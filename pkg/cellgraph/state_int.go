package cellgraph

// IntState wraps State[int] with convenience methods for counter-style
// cells.
type IntState struct {
	*State[int]
}

// NewIntState creates an IntState with the given initial value.
func NewIntState(cx *Context, initial int, opts ...CellOption) *IntState {
	return &IntState{NewState(cx, initial, opts...)}
}

// Inc increments the value by 1.
func (s *IntState) Inc() {
	s.Update(func(n int) int { return n + 1 })
}

// Dec decrements the value by 1.
func (s *IntState) Dec() {
	s.Update(func(n int) int { return n - 1 })
}

// Add adds the given value.
func (s *IntState) Add(n int) {
	s.Update(func(v int) int { return v + n })
}

// Sub subtracts the given value.
func (s *IntState) Sub(n int) {
	s.Update(func(v int) int { return v - n })
}

// Mul multiplies by the given value.
func (s *IntState) Mul(n int) {
	s.Update(func(v int) int { return v * n })
}

// Div divides by the given value.
// Note: Integer division truncates toward zero.
func (s *IntState) Div(n int) {
	s.Update(func(v int) int { return v / n })
}
