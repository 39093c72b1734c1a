package cellgraph

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name under which cycle spans are
// recorded.
const TracerName = "github.com/cellgraph-dev/cellgraph"

// startCycleSpan opens a span for one propagation cycle when a tracer
// is configured. The returned func ends the span, recording how many
// nodes were processed.
func (cx *Context) startCycleSpan(triggers int) func(processed int) {
	if cx.tracer == nil {
		return func(int) {}
	}

	_, span := cx.tracer.Start(context.Background(), "cellgraph.cycle",
		trace.WithAttributes(
			attribute.Int("cellgraph.triggers", triggers),
			attribute.Int("cellgraph.nodes", len(cx.nodes)),
		),
	)
	return func(processed int) {
		span.SetAttributes(attribute.Int("cellgraph.processed", processed))
		span.End()
	}
}
