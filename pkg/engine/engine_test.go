package engine

import (
	"errors"
	"slices"
	"testing"

	"algoviz/pkg/dataset"
)

type captureSink struct {
	results []*Result
}

func (c *captureSink) Insert(res *Result) error {
	c.results = append(c.results, res)
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	return New(dataset.NewRegistry(), sink, 10), sink
}

func putInts(t *testing.T, eng *Engine, values []int32) *dataset.Dataset {
	t.Helper()
	ds := dataset.NewIntDataset("test", values)
	eng.Datasets().Put(ds)
	return ds
}

func putStrings(t *testing.T, eng *Engine, values []string) *dataset.Dataset {
	t.Helper()
	ds := dataset.NewStringDataset("test", values)
	eng.Datasets().Put(ds)
	return ds
}

func TestSearchLinear(t *testing.T) {
	eng, sink := newTestEngine(t)
	ds := putInts(t, eng, []int32{5, 2, 8, 1, 9})

	out, err := eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "linear", Target: "8"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	res := out.Result
	if !res.Found || res.FoundIndex != 2 {
		t.Fatalf("result = found %v at %d, want index 2", res.Found, res.FoundIndex)
	}
	if res.Comparisons != 3 {
		t.Errorf("comparisons = %d, want 3", res.Comparisons)
	}
	if res.Operation != "search" || res.Algorithm != "linear" || res.RunID == "" {
		t.Errorf("result metadata wrong: %+v", res)
	}
	if res.TimeComplexity == "" || res.SpaceComplexity == "" {
		t.Error("complexity annotations missing")
	}
	if len(sink.results) != 1 {
		t.Errorf("sink received %d results, want 1", len(sink.results))
	}
	if len(out.Steps) != 0 {
		t.Errorf("non-visualized run produced %d steps", len(out.Steps))
	}
}

func TestSearchMiss(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putInts(t, eng, []int32{1, 2, 3})

	out, err := eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "linear", Target: "99"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out.Result.Found || out.Result.FoundIndex != -1 {
		t.Fatalf("miss reported found=%v index=%d", out.Result.Found, out.Result.FoundIndex)
	}
}

func TestSearchErrors(t *testing.T) {
	eng, _ := newTestEngine(t)
	intDS := putInts(t, eng, []int32{1, 2, 3})
	strDS := putStrings(t, eng, []string{"a", "b"})

	cases := []struct {
		name string
		req  SearchRequest
		want error
	}{
		{"missing dataset", SearchRequest{DatasetID: "nope", Algorithm: "linear", Target: "1"}, ErrDatasetNotFound},
		{"unknown algorithm", SearchRequest{DatasetID: intDS.ID, Algorithm: "bogus", Target: "1"}, ErrUnknownAlgorithm},
		{"trie on ints", SearchRequest{DatasetID: intDS.ID, Algorithm: "trie", Target: "1"}, ErrUnsupportedVariant},
		{"bfs on strings", SearchRequest{DatasetID: strDS.ID, Algorithm: "bfs", Target: "a"}, ErrUnsupportedVariant},
		{"dfs on strings", SearchRequest{DatasetID: strDS.ID, Algorithm: "dfs", Target: "a"}, ErrUnsupportedVariant},
		{"unparsable target", SearchRequest{DatasetID: intDS.ID, Algorithm: "linear", Target: "abc"}, ErrBadTarget},
	}
	for _, tc := range cases {
		if _, err := eng.Search(tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestSearchVisualizeSizeLimit(t *testing.T) {
	eng, _ := newTestEngine(t) // limit 10
	big := putInts(t, eng, make([]int32, 11))

	_, err := eng.Search(SearchRequest{DatasetID: big.ID, Algorithm: "linear", Target: "1", Visualize: true})
	if !errors.Is(err, ErrTooLargeForViz) {
		t.Fatalf("err = %v, want ErrTooLargeForViz", err)
	}

	// Same dataset without visualization runs fine.
	if _, err := eng.Search(SearchRequest{DatasetID: big.ID, Algorithm: "linear", Target: "1"}); err != nil {
		t.Fatalf("non-visualized run failed: %v", err)
	}
}

func TestBinaryVisualizePresorts(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putInts(t, eng, []int32{5, 2, 8, 1, 9})

	out, err := eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "binary", Target: "8", Visualize: true})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !out.Result.Presorted {
		t.Error("presorted flag not set for unsorted input")
	}
	if !out.Result.Found {
		t.Error("target not found after presort")
	}
	if len(out.Steps) == 0 {
		t.Fatal("visualized run produced no steps")
	}
	if !slices.IsSorted(out.Steps[0].IntState) {
		t.Errorf("first step state %v not sorted", out.Steps[0].IntState)
	}

	// Stored dataset must be untouched.
	stored, _ := eng.Datasets().Get(ds.ID)
	if !slices.Equal(stored.Ints, []int32{5, 2, 8, 1, 9}) {
		t.Errorf("stored data mutated: %v", stored.Ints)
	}

	// Already-sorted input never gets the flag.
	sorted := putInts(t, eng, []int32{1, 2, 3})
	out, err = eng.Search(SearchRequest{DatasetID: sorted.ID, Algorithm: "binary", Target: "2", Visualize: true})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out.Result.Presorted {
		t.Error("presorted flag set for sorted input")
	}
}

func TestSearchTrieOnStrings(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putStrings(t, eng, []string{"apple", "banana", "grape"})

	out, err := eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "trie", Target: "grape"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !out.Result.Found || out.Result.FoundIndex != 2 {
		t.Fatalf("found %v at %d, want index 2", out.Result.Found, out.Result.FoundIndex)
	}
}

func TestSearchBFSReportsNodes(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putInts(t, eng, []int32{10, 20, 30, 40, 50})

	out, err := eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "bfs", Target: "50"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out.Result.NodesVisited != 5 {
		t.Errorf("nodes visited = %d, want 5", out.Result.NodesVisited)
	}
}

func TestSortInts(t *testing.T) {
	eng, sink := newTestEngine(t)
	ds := putInts(t, eng, []int32{5, 2, 8, 1, 9})

	out, err := eng.Sort(SortRequest{DatasetID: ds.ID, Algorithm: "quick"})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if !slices.IsSorted(out.SortedInts) {
		t.Fatalf("output %v not sorted", out.SortedInts)
	}
	if out.Result.Operation != "sort" {
		t.Errorf("operation = %s", out.Result.Operation)
	}
	if out.Result.Comparisons == 0 {
		t.Error("sort counted no comparisons")
	}
	if len(sink.results) != 1 {
		t.Errorf("sink received %d results", len(sink.results))
	}

	// Registry copy untouched.
	stored, _ := eng.Datasets().Get(ds.ID)
	if !slices.Equal(stored.Ints, []int32{5, 2, 8, 1, 9}) {
		t.Errorf("stored data mutated: %v", stored.Ints)
	}
}

func TestSortStringsVisualized(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putStrings(t, eng, []string{"grape", "apple", "banana"})

	out, err := eng.Sort(SortRequest{DatasetID: ds.ID, Algorithm: "bubble", Visualize: true})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if !slices.IsSorted(out.SortedStrings) {
		t.Fatalf("output %v not sorted", out.SortedStrings)
	}
	if len(out.Steps) == 0 {
		t.Fatal("visualized sort produced no steps")
	}
	last := out.Steps[len(out.Steps)-1]
	if !slices.IsSorted(last.StringState) {
		t.Errorf("final step state %v not sorted", last.StringState)
	}
}

func TestSortErrors(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putInts(t, eng, []int32{1})

	if _, err := eng.Sort(SortRequest{DatasetID: "nope", Algorithm: "quick"}); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("missing dataset: err = %v", err)
	}
	if _, err := eng.Sort(SortRequest{DatasetID: ds.ID, Algorithm: "linear"}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("search algorithm accepted as sort: err = %v", err)
	}
}

func TestWorkloadStatsTrackRuns(t *testing.T) {
	eng, _ := newTestEngine(t)
	ds := putInts(t, eng, []int32{1, 2, 3})

	eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "linear", Target: "2"})
	eng.Search(SearchRequest{DatasetID: ds.ID, Algorithm: "linear", Target: "99"})
	eng.Sort(SortRequest{DatasetID: ds.ID, Algorithm: "bubble"})

	snap := eng.Stats().Snapshot()
	if snap["searches"] != uint64(2) {
		t.Errorf("searches = %v, want 2", snap["searches"])
	}
	if snap["sorts"] != uint64(1) {
		t.Errorf("sorts = %v, want 1", snap["sorts"])
	}
	if snap["hits"] != uint64(1) {
		t.Errorf("hits = %v, want 1", snap["hits"])
	}
	if snap["hit_ratio"] != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", snap["hit_ratio"])
	}
}

func TestOperationClassification(t *testing.T) {
	if op, err := Operation("binary"); err != nil || op != "search" {
		t.Errorf("binary -> (%s, %v)", op, err)
	}
	if op, err := Operation("merge"); err != nil || op != "sort" {
		t.Errorf("merge -> (%s, %v)", op, err)
	}
	if _, err := Operation("bogus"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("bogus -> %v", err)
	}
}
