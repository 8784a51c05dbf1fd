package main

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phroun/linkedlist"
)

// sortedInputLimit caps the sizes at which sorted input is benchmarked; the
// partition sort is quadratic on it.
const sortedInputLimit = 10000

// benchStep is one named benchmark at a given size.
type benchStep struct {
	name string
	fn   func() (BenchResult, error)
}

// BenchResult is one timed run over a list of Nodes nodes.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Nodes    int // list length the run worked on
	Passes   int // full traversals timed, at least 1
	Note     string
}

// PerNode returns the average time spent on each node per pass.
func (r BenchResult) PerNode() time.Duration {
	work := r.Nodes * max(r.Passes, 1)
	if work == 0 {
		return 0
	}
	return r.Duration / time.Duration(work)
}

func (r BenchResult) String() string {
	row := fmt.Sprintf("%-32s %12v  %8v/node", r.Name, r.Duration.Round(time.Microsecond), r.PerNode())
	if r.Note != "" {
		row += "  " + r.Note
	}
	return row
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	a, err := newArena()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "linkedlist Benchmark")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "Sizes: %v, seed: %d\n", cfg.Bench.Sizes, cfg.Bench.Seed)
	fmt.Fprintln(out)

	results, err := benchSizes(a, cfg.Bench.Sizes, cfg.Bench.Seed, out)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nSUMMARY")
	fmt.Fprintln(out, "=======")
	for _, r := range results {
		fmt.Fprintln(out, r)
	}

	stats := a.Stats()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total allocations: %d, releases: %d\n", stats.Allocations, stats.Releases)
	return nil
}

// benchSizes runs every benchmark at each size, printing progress to out.
func benchSizes(a *linkedlist.Arena, sizes []int, seed int64, out io.Writer) ([]BenchResult, error) {
	rng := rand.New(rand.NewSource(seed))
	var results []BenchResult

	runBench := func(name string, fn func() (BenchResult, error)) error {
		fmt.Fprintf(out, "  %-40s ", name+"...")
		result, err := fn()
		if err != nil {
			fmt.Fprintln(out, "failed")
			return err
		}
		fmt.Fprintf(out, "%v\n", result.Duration.Round(time.Microsecond))
		results = append(results, result)
		return nil
	}

	for _, size := range sizes {
		values := make([]int, size)
		for i := range values {
			values[i] = rng.Intn(size)
		}

		fmt.Fprintf(out, "Size %d:\n", size)
		steps := []benchStep{
			{fmt.Sprintf("Create list (n=%d)", size), func() (BenchResult, error) { return benchCreate(a, values) }},
			{fmt.Sprintf("Sort random (n=%d)", size), func() (BenchResult, error) { return benchSort(a, values, "random") }},
			{fmt.Sprintf("Reverse (n=%d)", size), func() (BenchResult, error) { return benchReverse(a, values) }},
			{fmt.Sprintf("Queries (n=%d)", size), func() (BenchResult, error) { return benchQueries(a, values) }},
		}
		if size <= sortedInputLimit {
			sorted := make([]int, size)
			for i := range sorted {
				sorted[i] = i
			}
			steps = append(steps, benchStep{fmt.Sprintf("Sort sorted (n=%d)", size), func() (BenchResult, error) { return benchSort(a, sorted, "sorted") }})
		}

		for _, step := range steps {
			if err := runBench(step.name, step.fn); err != nil {
				return results, fmt.Errorf("%s: %w", step.name, err)
			}
		}
		logger.Debug("bench size complete", zap.Int("size", size), zap.Int("live_nodes", a.Stats().LiveNodes))
	}
	return results, nil
}

func benchCreate(a *linkedlist.Arena, values []int) (BenchResult, error) {
	start := time.Now()
	l, err := a.CreateList(values)
	if err != nil {
		return BenchResult{}, err
	}
	created := time.Since(start)

	released := a.Clear(l)
	return BenchResult{
		Name:     fmt.Sprintf("Create list (n=%d)", len(values)),
		Duration: created,
		Nodes:    len(values),
		Note:     fmt.Sprintf("released %d", released),
	}, nil
}

func benchSort(a *linkedlist.Arena, values []int, kind string) (BenchResult, error) {
	l, err := a.CreateList(values)
	if err != nil {
		return BenchResult{}, err
	}
	defer func() { a.Clear(l) }()

	start := time.Now()
	l = a.Sort(l)
	elapsed := time.Since(start)

	return BenchResult{
		Name:     fmt.Sprintf("Sort %s (n=%d)", kind, len(values)),
		Duration: elapsed,
		Nodes:    len(values),
		Note:     fmt.Sprintf("min=%d max=%d", a.Min(l), a.Max(l)),
	}, nil
}

func benchReverse(a *linkedlist.Arena, values []int) (BenchResult, error) {
	l, err := a.CreateList(values)
	if err != nil {
		return BenchResult{}, err
	}
	defer func() { a.Clear(l) }()

	const rounds = 10
	start := time.Now()
	for i := 0; i < rounds; i++ {
		l = a.Reverse(l)
	}
	return BenchResult{
		Name:     fmt.Sprintf("Reverse (n=%d)", len(values)),
		Duration: time.Since(start),
		Nodes:    len(values),
		Passes:   rounds,
	}, nil
}

func benchQueries(a *linkedlist.Arena, values []int) (BenchResult, error) {
	l, err := a.CreateList(values)
	if err != nil {
		return BenchResult{}, err
	}
	defer func() { a.Clear(l) }()

	start := time.Now()
	length := a.Length(l)
	hits := a.Count(l, values[0])
	_ = a.ToSlice(l)
	_, found := a.FindValue(l, values[len(values)-1])
	elapsed := time.Since(start)

	return BenchResult{
		Name:     fmt.Sprintf("Queries (n=%d)", len(values)),
		Duration: elapsed,
		Nodes:    len(values),
		Passes:   4,
		Note:     fmt.Sprintf("length=%d count=%d found=%v", length, hits, found != linkedlist.NoNode),
	}, nil
}
