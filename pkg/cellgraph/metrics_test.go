package cellgraph

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollection(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithSubsystem("engine"))

	cx := NewContext(WithMetrics(m))
	s := NewState(cx, 1)
	_ = NewMemo(cx, func() int { return s.Get() * 2 }, Eager())

	s.Set(2)
	s.Set(3)

	if got := testutil.ToFloat64(m.cyclesTotal); got != 2 {
		t.Errorf("expected 2 cycles, got %v", got)
	}
	if got := testutil.ToFloat64(m.recomputesTotal.WithLabelValues("memo")); got < 3 {
		t.Errorf("expected at least 3 memo recomputes, got %v", got)
	}
	if got := testutil.ToFloat64(m.reachMisses); got != 1 {
		t.Errorf("expected 1 reach miss, got %v", got)
	}
	if got := testutil.ToFloat64(m.reachHits); got != 1 {
		t.Errorf("expected 1 reach hit, got %v", got)
	}

	cx.Batch(func() {
		s.Set(10)
		s.Set(11)
	})
	if got := testutil.ToFloat64(m.batchedWrites); got != 2 {
		t.Errorf("expected 2 batched writes, got %v", got)
	}
	if got := testutil.ToFloat64(m.cyclesTotal); got != 3 {
		t.Errorf("expected 3 cycles after batch, got %v", got)
	}
}

func TestMetricsOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("custom"),
		WithConstLabels(prometheus.Labels{"ctx": "test"}),
		WithBuckets([]float64{0.001, 0.01}),
	)
	if m == nil {
		t.Fatal("expected metrics instance")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "custom_cycle_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("expected namespaced histogram to be registered")
	}
}
