package cellgraph

import "testing"

func TestBatchCoalescesWrites(t *testing.T) {
	cx := NewContext()
	a := NewState(cx, 1)
	b := NewState(cx, 2)
	c := NewState(cx, 3)

	computes := 0
	sum := NewMemo(cx, func() int {
		computes++
		return a.Get() + b.Get() + c.Get()
	})
	if got := sum.Get(); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}

	cx.Batch(func() {
		a.Set(10)
		b.Set(20)
		c.Set(30)
		if computes != 1 {
			t.Errorf("no propagation inside an open batch, got %d computes", computes)
		}
	})

	if computes != 2 {
		t.Errorf("three batched writes must produce one cycle, got %d computes", computes)
	}
	if got := sum.Get(); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
}

func TestBatchNesting(t *testing.T) {
	cx := NewContext()
	s := NewState(cx, 0)

	computes := 0
	_ = NewMemo(cx, func() int {
		computes++
		return s.Get()
	}, Eager())

	cx.StartBatching()
	cx.StartBatching()
	s.Set(1)
	cx.EndBatching()
	if computes != 1 {
		t.Errorf("inner batch close must not flush, got %d computes", computes)
	}
	cx.EndBatching()
	if computes != 2 {
		t.Errorf("outermost batch close must flush, got %d computes", computes)
	}
}

func TestBatchRepeatedWritesOneRecompute(t *testing.T) {
	cx := NewContext()
	s := NewState(cx, 0)

	computes := 0
	m := NewMemo(cx, func() int {
		computes++
		return s.Get()
	}, Eager())

	cx.Batch(func() {
		for i := 1; i <= 10; i++ {
			s.Set(i)
		}
	})

	if computes != 2 {
		t.Errorf("ten batched writes to one cell must recompute once, got %d", computes)
	}
	if got := m.Get(); got != 10 {
		t.Errorf("expected last write to win, got %d", got)
	}
}

func TestBatchReleasedOnPanic(t *testing.T) {
	cx := NewContext()
	s := NewState(cx, 0)

	computes := 0
	_ = NewMemo(cx, func() int {
		computes++
		return s.Get()
	}, Eager())

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to surface")
			}
		}()
		cx.Batch(func() {
			s.Set(1)
			panic("boom")
		})
	}()

	if cx.Batching() {
		t.Fatal("batch scope must be released after a panic")
	}
	// The queued write still flushed on release.
	if computes != 2 {
		t.Errorf("expected the batched write to flush, got %d computes", computes)
	}

	// And the engine stays usable.
	s.Set(2)
	if computes != 3 {
		t.Errorf("expected a fresh cycle after recovery, got %d computes", computes)
	}
}

func TestEndBatchingUnderflowIsNoop(t *testing.T) {
	cx := NewContext()
	cx.EndBatching()
	if cx.Batching() {
		t.Error("unbalanced EndBatching must not open a scope")
	}
}
