// Command cellgraph-bench builds synthetic dependency graphs and
// measures propagation throughput. It is a development tool, not part
// of the library API.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cellgraph-dev/cellgraph/pkg/cellgraph"
)

type profile struct {
	Name   string
	Layers int
	Width  int
	Writes int
}

var profiles = map[string]profile{
	"fast": {
		Name:   "fast",
		Layers: 4,
		Width:  8,
		Writes: 1_000,
	},
	"standard": {
		Name:   "standard",
		Layers: 8,
		Width:  16,
		Writes: 10_000,
	},
	"stress": {
		Name:   "stress",
		Layers: 16,
		Width:  32,
		Writes: 50_000,
	},
}

func main() {
	var (
		profileName string
		layers      int
		width       int
		writes      int
		verbose     bool
		showMetrics bool
	)

	rootCmd := &cobra.Command{
		Use:   "cellgraph-bench",
		Short: "Benchmark the cellgraph propagation engine",
		Long: `cellgraph-bench builds a layered synthetic dependency graph
(states feeding stacked memo layers) and measures write-to-propagation
latency across repeated state writes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := profiles[profileName]
			if !ok {
				return fmt.Errorf("unknown profile %q (want fast, standard, or stress)", profileName)
			}
			if layers > 0 {
				p.Layers = layers
			}
			if width > 0 {
				p.Width = width
			}
			if writes > 0 {
				p.Writes = writes
			}
			return run(p, verbose, showMetrics)
		},
	}

	rootCmd.Flags().StringVar(&profileName, "profile", "standard", "benchmark profile: fast, standard, stress")
	rootCmd.Flags().IntVar(&layers, "layers", 0, "override memo layer count")
	rootCmd.Flags().IntVar(&width, "width", 0, "override cells per layer")
	rootCmd.Flags().IntVar(&writes, "writes", 0, "override write count")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print engine metrics after the run")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(p profile, verbose, showMetrics bool) error {
	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = dev.Sync() }()
		logger = dev
	}

	reg := prometheus.NewRegistry()
	metrics := cellgraph.NewMetrics(cellgraph.WithRegistry(reg))

	cx := cellgraph.NewContext(
		cellgraph.WithLogger(logger),
		cellgraph.WithMetrics(metrics),
	)

	roots, sinks := buildLayered(cx, p.Layers, p.Width)

	fmt.Printf("profile=%s layers=%d width=%d nodes=%d writes=%d\n",
		p.Name, p.Layers, p.Width, cx.Size(), p.Writes)

	// Materialize the whole graph so edges exist before timing.
	for _, sink := range sinks {
		_ = sink.Get()
	}

	durations := make([]time.Duration, 0, p.Writes)
	start := time.Now()
	for i := 0; i < p.Writes; i++ {
		root := roots[i%len(roots)]
		t0 := time.Now()
		root.Set(i + 1)
		durations = append(durations, time.Since(t0))
	}
	total := time.Since(start)

	report(durations, total)

	if showMetrics {
		return printMetrics(reg)
	}
	return nil
}

// buildLayered wires width state cells into layers of memos, each memo
// summing two cells of the previous layer.
func buildLayered(cx *cellgraph.Context, layers, width int) ([]*cellgraph.State[int], []*cellgraph.Memo[int]) {
	roots := make([]*cellgraph.State[int], width)
	prev := make([]func() int, width)
	for i := range roots {
		roots[i] = cellgraph.NewState(cx, i, cellgraph.WithName(fmt.Sprintf("root-%d", i)))
		prev[i] = roots[i].Get
	}

	var sinks []*cellgraph.Memo[int]
	for l := 0; l < layers; l++ {
		next := make([]func() int, width)
		sinks = sinks[:0]
		for i := 0; i < width; i++ {
			left, right := prev[i], prev[(i+1)%width]
			m := cellgraph.NewMemo(cx, func() int {
				return left() + right()
			}, cellgraph.WithName(fmt.Sprintf("layer-%d-%d", l, i)))
			next[i] = m.Get
			sinks = append(sinks, m)
		}
		prev = next
	}
	return roots, sinks
}

func report(durations []time.Duration, total time.Duration) {
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	pct := func(p float64) time.Duration {
		idx := int(p * float64(len(durations)-1))
		return durations[idx]
	}

	fmt.Printf("total=%v writes/sec=%.0f\n", total.Round(time.Millisecond),
		float64(len(durations))/total.Seconds())
	fmt.Printf("write latency p50=%v p90=%v p99=%v max=%v\n",
		pct(0.50), pct(0.90), pct(0.99), durations[len(durations)-1])
}

func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			labels := ""
			for _, p := range m.GetLabel() {
				if labels != "" {
					labels += ","
				}
				labels += p.GetName() + "=" + p.GetValue()
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("%s%s %v\n", f.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Printf("%s count=%d sum=%.6fs\n", f.GetName(), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}
