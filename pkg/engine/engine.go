// Package engine is the front door of the algorithm runner: it resolves a
// dataset, dispatches to the right kernel for the dataset's element
// variant, and assembles the per-run Result. Capability mismatches (trie
// on integers, graph search on strings) fail here, before any kernel runs.
package engine

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"algoviz/pkg/common"
	"algoviz/pkg/dataset"
	"algoviz/pkg/metrics"
	"algoviz/pkg/monitor"
	"algoviz/pkg/search"
	"algoviz/pkg/sorting"
	"algoviz/pkg/viz"
)

var (
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrUnsupportedVariant = errors.New("algorithm does not support this element variant")
	ErrDatasetNotFound    = errors.New("dataset not found")
	ErrTooLargeForViz     = errors.New("dataset too large for visualization")
	ErrBadTarget          = errors.New("target does not parse as the dataset variant")
)

var searchAlgorithms = map[string]bool{
	"linear": true, "binary": true, "trie": true, "bfs": true, "dfs": true,
}

var sortAlgorithms = map[string]bool{
	"bubble": true, "insertion": true, "selection": true, "quick": true, "merge": true,
}

func IsSearchAlgorithm(name string) bool { return searchAlgorithms[name] }
func IsSortAlgorithm(name string) bool   { return sortAlgorithms[name] }

// Operation classifies an algorithm name.
func Operation(name string) (string, error) {
	switch {
	case searchAlgorithms[name]:
		return "search", nil
	case sortAlgorithms[name]:
		return "sort", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// ResultSink receives every completed Result. The SQLite archive
// implements it; a nil sink disables write-through.
type ResultSink interface {
	Insert(res *Result) error
}

type Engine struct {
	datasets *dataset.Registry
	sink     ResultSink
	stats    *monitor.WorkloadStats
	maxViz   int
}

func New(reg *dataset.Registry, sink ResultSink, maxVizElements int) *Engine {
	if maxVizElements <= 0 {
		maxVizElements = 200
	}
	return &Engine{
		datasets: reg,
		sink:     sink,
		stats:    monitor.NewWorkloadStats(),
		maxViz:   maxVizElements,
	}
}

func (e *Engine) Datasets() *dataset.Registry   { return e.datasets }
func (e *Engine) Stats() *monitor.WorkloadStats { return e.stats }

type SearchRequest struct {
	DatasetID string `json:"dataset_id"`
	Algorithm string `json:"algorithm"`
	Target    string `json:"target"`
	Visualize bool   `json:"visualize"`
}

type SortRequest struct {
	DatasetID string `json:"dataset_id"`
	Algorithm string `json:"algorithm"`
	Visualize bool   `json:"visualize"`
}

// RunOutput bundles the Result with the optional visualization artifacts.
type RunOutput struct {
	Result        *Result          `json:"result"`
	Steps         []viz.StepRecord `json:"steps,omitempty"`
	SortedInts    []int32          `json:"sorted_ints,omitempty"`
	SortedStrings []string         `json:"sorted_strings,omitempty"`
}

func (e *Engine) Search(req SearchRequest) (*RunOutput, error) {
	ds, ok := e.datasets.Get(req.DatasetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, req.DatasetID)
	}
	if !IsSearchAlgorithm(req.Algorithm) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if req.Visualize && ds.Size() > e.maxViz {
		return nil, fmt.Errorf("%w: %d elements (limit %d)", ErrTooLargeForViz, ds.Size(), e.maxViz)
	}

	var out *RunOutput
	var err error
	switch ds.Variant {
	case common.VariantInt:
		if req.Algorithm == "trie" {
			return nil, fmt.Errorf("trie search on integer dataset: %w", ErrUnsupportedVariant)
		}
		target64, perr := strconv.ParseInt(req.Target, 10, 32)
		if perr != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadTarget, req.Target)
		}
		out, err = e.searchInts(ds, req.Algorithm, int32(target64), req.Visualize)
	case common.VariantString:
		if req.Algorithm == "bfs" || req.Algorithm == "dfs" {
			return nil, fmt.Errorf("%s search on string dataset: %w", req.Algorithm, ErrUnsupportedVariant)
		}
		out, err = e.searchStrings(ds, req.Algorithm, req.Target, req.Visualize)
	default:
		return nil, fmt.Errorf("%w: variant %q", ErrUnsupportedVariant, ds.Variant)
	}
	if err != nil {
		return nil, err
	}

	e.stats.RecordSearch()
	if out.Result.Found {
		e.stats.RecordHit()
	}
	e.persist(out.Result)
	return out, nil
}

func (e *Engine) searchInts(ds *dataset.Dataset, algo string, target int32, visualize bool) (*RunOutput, error) {
	data := ds.IntSnapshot()

	presorted := false
	if algo == "binary" && visualize && !slices.IsSorted(data) {
		// Visualization over unsorted data would display nonsense ranges,
		// so a private copy is sorted first. The pre-sorting is not
		// counted and the Result carries Presorted so callers can tell
		// the displayed array is not their original order.
		slices.Sort(data)
		presorted = true
	}

	mc := metrics.NewCollector[int32]()
	rec, trace := pickRecorder[int32](visualize)

	start := time.Now()
	idx := common.NotFound
	nodes := 0
	switch algo {
	case "linear":
		idx = search.Linear(data, target, mc, rec)
	case "binary":
		idx = search.Binary(data, target, mc, rec)
	case "bfs":
		idx, nodes = search.BFS(data, target, mc, rec)
	case "dfs":
		idx, nodes = search.DFS(data, target, mc, rec)
	}
	elapsed := time.Since(start)

	res := e.newResult("search", algo, ds, elapsed, mc.Comparisons(), mc.Swaps(), mc.ArrayAccesses(), nodes, idx, presorted)
	return &RunOutput{Result: res, Steps: traceRecords(trace)}, nil
}

func (e *Engine) searchStrings(ds *dataset.Dataset, algo string, target string, visualize bool) (*RunOutput, error) {
	data := ds.StringSnapshot()

	presorted := false
	if algo == "binary" && visualize && !slices.IsSorted(data) {
		slices.Sort(data)
		presorted = true
	}

	mc := metrics.NewCollector[string]()
	rec, trace := pickRecorder[string](visualize)

	start := time.Now()
	idx := common.NotFound
	switch algo {
	case "linear":
		idx = search.Linear(data, target, mc, rec)
	case "binary":
		idx = search.Binary(data, target, mc, rec)
	case "trie":
		idx = search.Trie(data, target, mc, rec)
	}
	elapsed := time.Since(start)

	res := e.newResult("search", algo, ds, elapsed, mc.Comparisons(), mc.Swaps(), mc.ArrayAccesses(), 0, idx, presorted)
	return &RunOutput{Result: res, Steps: traceRecords(trace)}, nil
}

func (e *Engine) Sort(req SortRequest) (*RunOutput, error) {
	ds, ok := e.datasets.Get(req.DatasetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, req.DatasetID)
	}
	if !IsSortAlgorithm(req.Algorithm) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if req.Visualize && ds.Size() > e.maxViz {
		return nil, fmt.Errorf("%w: %d elements (limit %d)", ErrTooLargeForViz, ds.Size(), e.maxViz)
	}

	var out *RunOutput
	switch ds.Variant {
	case common.VariantInt:
		data := ds.IntSnapshot()
		elapsed, comparisons, swaps, accesses, steps := runSort(req.Algorithm, data, req.Visualize)
		res := e.newResult("sort", req.Algorithm, ds, elapsed, comparisons, swaps, accesses, 0, common.NotFound, false)
		out = &RunOutput{Result: res, Steps: steps, SortedInts: data}
	case common.VariantString:
		data := ds.StringSnapshot()
		elapsed, comparisons, swaps, accesses, steps := runSort(req.Algorithm, data, req.Visualize)
		res := e.newResult("sort", req.Algorithm, ds, elapsed, comparisons, swaps, accesses, 0, common.NotFound, false)
		out = &RunOutput{Result: res, Steps: steps, SortedStrings: data}
	default:
		return nil, fmt.Errorf("%w: variant %q", ErrUnsupportedVariant, ds.Variant)
	}

	e.stats.RecordSort()
	e.persist(out.Result)
	return out, nil
}

// runSort mutates data in place. One generic body serves both variants.
func runSort[E common.Element](algo string, data []E, visualize bool) (time.Duration, int64, int64, int64, []viz.StepRecord) {
	mc := metrics.NewCollector[E]()
	rec, trace := pickRecorder[E](visualize)

	start := time.Now()
	switch algo {
	case "bubble":
		sorting.Bubble(data, mc, rec)
	case "insertion":
		sorting.Insertion(data, mc, rec)
	case "selection":
		sorting.Selection(data, mc, rec)
	case "quick":
		sorting.Quick(data, mc, rec)
	case "merge":
		sorting.Merge(data, mc, rec)
	}
	elapsed := time.Since(start)

	return elapsed, mc.Comparisons(), mc.Swaps(), mc.ArrayAccesses(), traceRecords(trace)
}

// pickRecorder injects the recording capability once per run, so kernels
// never branch on recorder presence.
func pickRecorder[E common.Element](visualize bool) (viz.Recorder[E], *viz.TraceRecorder[E]) {
	if visualize {
		trace := viz.NewTraceRecorder[E]()
		return trace, trace
	}
	return viz.NewNullRecorder[E](), nil
}

func traceRecords[E common.Element](trace *viz.TraceRecorder[E]) []viz.StepRecord {
	if trace == nil {
		return nil
	}
	return viz.Records(trace.Steps())
}

func (e *Engine) newResult(op, algo string, ds *dataset.Dataset, elapsed time.Duration, comparisons, swaps, accesses int64, nodes, idx int, presorted bool) *Result {
	c := complexities[algo]
	return &Result{
		RunID:           uuid.NewString(),
		Operation:       op,
		Algorithm:       algo,
		DatasetID:       ds.ID,
		DatasetSize:     ds.Size(),
		Variant:         ds.Variant,
		DurationNS:      elapsed.Nanoseconds(),
		DurationMS:      float64(elapsed.Nanoseconds()) / 1e6,
		Comparisons:     comparisons,
		Swaps:           swaps,
		Accesses:        accesses,
		NodesVisited:    nodes,
		Found:           idx != common.NotFound,
		FoundIndex:      idx,
		Presorted:       presorted,
		TimeComplexity:  c.time,
		SpaceComplexity: c.space,
		CreatedAt:       time.Now(),
	}
}

func (e *Engine) persist(res *Result) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Insert(res); err != nil {
		log.Printf("[Engine] Failed to archive result %s: %v", res.RunID, err)
	}
}
