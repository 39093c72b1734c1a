package cellgraph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics for a Context.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "cellgraph").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for cycle duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the cycle-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "cellgraph",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus instruments for one or more Contexts.
type Metrics struct {
	cyclesTotal     prometheus.Counter
	cycleDuration   prometheus.Histogram
	recomputesTotal *prometheus.CounterVec
	reachHits       prometheus.Counter
	reachMisses     prometheus.Counter
	batchedWrites   prometheus.Counter
	pendingRetries  prometheus.Counter
}

// NewMetrics creates and registers the engine metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "cycles_total",
			Help:        "Total number of propagation cycles run.",
			ConstLabels: cfg.ConstLabels,
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "cycle_duration_seconds",
			Help:        "Duration of propagation cycles.",
			Buckets:     cfg.Buckets,
			ConstLabels: cfg.ConstLabels,
		}),
		recomputesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "recomputes_total",
			Help:        "Total node recomputations, by node kind.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),
		reachHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "reach_cache_hits_total",
			Help:        "Reachability cache hits.",
			ConstLabels: cfg.ConstLabels,
		}),
		reachMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "reach_cache_misses_total",
			Help:        "Reachability cache misses.",
			ConstLabels: cfg.ConstLabels,
		}),
		batchedWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "batched_writes_total",
			Help:        "Writes deferred into an open batch scope.",
			ConstLabels: cfg.ConstLabels,
		}),
		pendingRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "pending_retries_total",
			Help:        "Nodes queued for retry after a pending outcome.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Nil-safe observation hooks used by the engine internals.

func (cx *Context) observeCycle(d time.Duration) {
	if cx.metrics == nil {
		return
	}
	cx.metrics.cyclesTotal.Inc()
	cx.metrics.cycleDuration.Observe(d.Seconds())
}

func (cx *Context) observeRecompute(k kind) {
	if cx.metrics == nil {
		return
	}
	cx.metrics.recomputesTotal.WithLabelValues(k.String()).Inc()
}

func (cx *Context) observeReachLookup(hit bool) {
	if cx.metrics == nil {
		return
	}
	if hit {
		cx.metrics.reachHits.Inc()
	} else {
		cx.metrics.reachMisses.Inc()
	}
}

func (cx *Context) observeBatchedWrite() {
	if cx.metrics == nil {
		return
	}
	cx.metrics.batchedWrites.Inc()
}

func (cx *Context) observePendingRetry() {
	if cx.metrics == nil {
		return
	}
	cx.metrics.pendingRetries.Inc()
}
