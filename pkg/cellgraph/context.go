package cellgraph

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Context is a self-contained engine instance. It owns an arena of
// nodes indexed by NodeID, the mirrored dependency adjacency, the
// reachability cache, and the scratch state of the current propagation
// cycle. Cells never reference each other directly; every relationship
// goes through the Context by id.
//
// A Context is not safe for concurrent use. See the package
// documentation for the serialization requirement.
type Context struct {
	nextID NodeID
	nodes  map[NodeID]*node

	// fwd maps observed id to observer ids, rev the mirror image. An
	// edge exists in fwd iff it exists in rev.
	fwd map[NodeID]map[NodeID]struct{}
	rev map[NodeID]map[NodeID]struct{}

	reach *reachCache

	// Cycle scratch, rebuilt at the start of every cycle.
	toVisit  map[NodeID]struct{}
	outcomes map[NodeID]Outcome

	// queue holds ids whose propagation was deferred by an open batch
	// or a pending outcome; it becomes part of the trigger set of the
	// next cycle.
	queue []NodeID

	batchDepth int
	cycleDepth int

	// observer is the id of the node whose computation is currently
	// executing; 0 means reads are untracked.
	observer NodeID

	logger  *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// ContextOption configures a Context at construction.
type ContextOption func(*Context)

// WithLogger sets the logger used for debug-level engine events.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) ContextOption {
	return func(cx *Context) {
		if logger != nil {
			cx.logger = logger
		}
	}
}

// WithMetrics attaches a Metrics collector to the Context.
func WithMetrics(m *Metrics) ContextOption {
	return func(cx *Context) {
		cx.metrics = m
	}
}

// WithTracer attaches an OpenTelemetry tracer; each propagation cycle
// is then recorded as a span.
func WithTracer(t trace.Tracer) ContextOption {
	return func(cx *Context) {
		cx.tracer = t
	}
}

// NewContext creates an empty engine instance.
func NewContext(opts ...ContextOption) *Context {
	cx := &Context{
		nodes:  make(map[NodeID]*node),
		fwd:    make(map[NodeID]map[NodeID]struct{}),
		rev:    make(map[NodeID]map[NodeID]struct{}),
		reach:  newReachCache(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cx)
	}
	return cx
}

// Untracked runs fn with dependency tracking suppressed: reads inside
// fn do not register the current computation as a dependent.
func (cx *Context) Untracked(fn func()) {
	prev := cx.observer
	cx.observer = 0
	defer func() { cx.observer = prev }()
	fn()
}

// tracked runs fn with id as the active observer and returns its result.
func (cx *Context) tracked(id NodeID, fn func() any) any {
	prev := cx.observer
	cx.observer = id
	defer func() { cx.observer = prev }()
	return fn()
}

// trackedRun is tracked for computations without a result.
func (cx *Context) trackedRun(id NodeID, fn func()) {
	prev := cx.observer
	cx.observer = id
	defer func() { cx.observer = prev }()
	fn()
}
