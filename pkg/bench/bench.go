// Package bench runs algorithm suites across dataset sizes and reduces the
// raw results into per-algorithm statistics. Raw results are always kept in
// the report; the reduction is a pure fold that can be re-derived at any
// time.
package bench

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"algoviz/pkg/dataset"
	"algoviz/pkg/engine"
)

var (
	ErrNoAlgorithms = errors.New("no algorithms to benchmark")
	ErrNoSizes      = errors.New("no dataset sizes to benchmark")
)

type Options struct {
	Algorithms  []string `json:"algorithms"`
	Sizes       []int    `json:"sizes"`
	RunsPerSize int      `json:"runs_per_size"`
	Parallelism int      `json:"parallelism"`
	Seed        int64    `json:"seed"`
}

type Report struct {
	Options     Options               `json:"options"`
	Results     []engine.Result       `json:"results"`
	Stats       map[string]Statistics `json:"stats"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Run executes every (algorithm, size, run) combination and reduces the
// results. Input errors are rejected before any run starts. Runs are
// independent (each owns its dataset, collector and recorder), so they
// are fanned out across a bounded errgroup; the reduction happens after
// Wait, which is the barrier the statistics need.
func Run(eng *engine.Engine, opts Options) (*Report, error) {
	if len(opts.Algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	if len(opts.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	for _, algo := range opts.Algorithms {
		if _, err := engine.Operation(algo); err != nil {
			return nil, err
		}
	}
	runs := opts.RunsPerSize
	if runs <= 0 {
		runs = 1
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	for _, size := range opts.Sizes {
		if size < 0 {
			return nil, fmt.Errorf("negative dataset size %d", size)
		}
	}

	type combo struct {
		algo string
		size int
		run  int
	}
	var combos []combo
	for _, algo := range opts.Algorithms {
		for _, size := range opts.Sizes {
			for run := 0; run < runs; run++ {
				combos = append(combos, combo{algo: algo, size: size, run: run})
			}
		}
	}

	results := make([]engine.Result, len(combos))
	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, c := range combos {
		i, c := i, c
		g.Go(func() error {
			res, err := runOne(eng, c.algo, c.size, opts.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("%s over %d elements: %w", c.algo, c.size, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	eng.Stats().RecordBenchmark()
	return &Report{
		Options:     opts,
		Results:     results,
		Stats:       Reduce(results),
		GeneratedAt: time.Now(),
	}, nil
}

// runOne generates a private dataset, registers it for the duration of the
// run and removes it afterwards so benchmark inputs never linger in the
// store. Search benchmarks get sorted integers (binary search's
// precondition) with a target drawn from the data; trie gets words; sorts
// get random integers.
func runOne(eng *engine.Engine, algo string, size int, seed int64) (*engine.Result, error) {
	op, err := engine.Operation(algo)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("bench-%s-%d", algo, size)
	var ds *dataset.Dataset
	switch {
	case algo == "trie":
		ds, err = dataset.GenerateWords(name, size, seed)
	case op == "search":
		ds, err = dataset.GenerateInts(name, dataset.GenSorted, size, seed)
	default:
		ds, err = dataset.GenerateInts(name, dataset.GenRandom, size, seed)
	}
	if err != nil {
		return nil, err
	}

	eng.Datasets().Put(ds)
	defer eng.Datasets().Delete(ds.ID)

	if op == "sort" {
		out, err := eng.Sort(engine.SortRequest{DatasetID: ds.ID, Algorithm: algo})
		if err != nil {
			return nil, err
		}
		return out.Result, nil
	}

	target := pickTarget(ds, seed)
	out, err := eng.Search(engine.SearchRequest{DatasetID: ds.ID, Algorithm: algo, Target: target})
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

func pickTarget(ds *dataset.Dataset, seed int64) string {
	if ds.Size() == 0 {
		return "0"
	}
	idx := int(seed) % ds.Size()
	if idx < 0 {
		idx = -idx
	}
	if len(ds.Strings) > 0 {
		return ds.Strings[idx]
	}
	return strconv.FormatInt(int64(ds.Ints[idx]), 10)
}
