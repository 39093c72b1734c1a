package cellgraph

import (
	"testing"

	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestContextOptions(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer(TracerName)
	cx := NewContext(
		WithLogger(zap.NewNop()),
		WithTracer(tracer),
	)

	// Cycles run unchanged with tracing enabled.
	s := NewState(cx, 1)
	m := NewMemo(cx, func() int { return s.Get() + 1 }, Eager())
	s.Set(2)
	if got := m.Get(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestContextIsolation(t *testing.T) {
	cx1 := NewContext()
	cx2 := NewContext()

	a := NewState(cx1, 1)
	b := NewState(cx2, 1)

	// IDs are per-Context, not global.
	if a.ID() != b.ID() {
		t.Errorf("expected both first nodes to get id 1, got %d and %d", a.ID(), b.ID())
	}
}

func TestFlushRetriesPending(t *testing.T) {
	cx := NewContext()
	upstream := NewState(cx, 1)

	starts := 0
	var deferred *Deferred[int]
	am := NewAsyncMemo(cx, func(d *Deferred[int]) {
		starts++
		_ = upstream.Get()
		deferred = d
	})
	_ = am.Get()

	// Queue the cell with a pending outcome, then flush: the retry
	// finds it still unresolved and re-queues without restarting it.
	upstream.Set(2)
	cx.Flush()
	if starts != 1 {
		t.Errorf("flush of an unresolved cell must not restart it, got %d", starts)
	}

	deferred.Resolve(5)
	if got := am.Peek(); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}

	// Nothing queued: Flush is a no-op.
	cx.Flush()
}
