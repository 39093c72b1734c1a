package cellgraph

import "testing"

func BenchmarkStateGetNoTracking(b *testing.B) {
	cx := NewContext()
	s := NewState(cx, 42)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Get()
	}
}

func BenchmarkStateSetNoObservers(b *testing.B) {
	cx := NewContext()
	s := NewState(cx, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Set(i)
	}
}

func BenchmarkMemoGetCached(b *testing.B) {
	cx := NewContext()
	s := NewState(cx, 42)
	m := NewMemo(cx, func() int { return s.Get() * 2 })
	_ = m.Get()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Get()
	}
}

func BenchmarkChainPropagation(b *testing.B) {
	const depth = 10

	cx := NewContext()
	s := NewState(cx, 0)
	prev := NewMemo(cx, func() int { return s.Get() + 1 })
	for i := 1; i < depth; i++ {
		p := prev
		prev = NewMemo(cx, func() int { return p.Get() + 1 })
	}
	_ = prev.Get()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Set(i + 1)
	}
}

func BenchmarkBatchedWrites(b *testing.B) {
	cx := NewContext()
	s := NewState(cx, 0)
	_ = NewMemo(cx, func() int { return s.Get() }, Eager())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cx.Batch(func() {
			s.Set(i)
			s.Set(i + 1)
		})
	}
}

func BenchmarkReachableFromCached(b *testing.B) {
	cx := NewContext()
	sid, _ := buildFan(cx)
	_ = cx.reachableFrom([]NodeID{sid})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = cx.reachableFrom([]NodeID{sid})
	}
}
