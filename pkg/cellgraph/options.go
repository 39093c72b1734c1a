package cellgraph

// cellConfig holds per-cell construction options.
type cellConfig struct {
	name   string
	equals func(prev, next any) bool
	eager  bool
	seed   any
}

// CellOption configures a cell at construction.
type CellOption func(*cellConfig)

// WithName attaches a diagnostic label to the cell. It has no
// behavioral effect; it only shows up in logs and introspection.
func WithName(name string) CellOption {
	return func(c *cellConfig) {
		c.name = name
	}
}

// WithEqualsFunc sets a custom equality predicate on the type-erased
// values. Most callers want the typed WithEquals instead.
func WithEqualsFunc(fn func(prev, next any) bool) CellOption {
	return func(c *cellConfig) {
		c.equals = fn
	}
}

// WithEquals sets a typed custom equality predicate.
func WithEquals[T any](fn func(prev, next T) bool) CellOption {
	return WithEqualsFunc(func(prev, next any) bool {
		p, _ := prev.(T)
		n, _ := next.(T)
		return fn(p, n)
	})
}

// AlwaysChanged makes every write count as a change, regardless of the
// values.
func AlwaysChanged() CellOption {
	return WithEqualsFunc(func(prev, next any) bool { return false })
}

// Eager forces the first evaluation of a derived cell at construction
// instead of on first read.
func Eager() CellOption {
	return func(c *cellConfig) {
		c.eager = true
	}
}

// WithSeed sets the baseline "previous" value used by the first
// equality comparison of a derived cell.
func WithSeed(v any) CellOption {
	return func(c *cellConfig) {
		c.seed = v
	}
}

func applyCellOptions(opts []CellOption) cellConfig {
	var cfg cellConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.equals == nil {
		cfg.equals = defaultEquals
	}
	return cfg
}
