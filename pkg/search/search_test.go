package search

import (
	"testing"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

func TestLinearFindsFirstMatch(t *testing.T) {
	data := []int32{5, 2, 8, 1, 9}
	mc := metrics.NewCollector[int32]()

	idx := Linear(data, 8, mc, viz.NewNullRecorder[int32]())
	if idx != 2 {
		t.Fatalf("index = %d, want 2", idx)
	}
	if got := mc.Comparisons(); got != 3 {
		t.Errorf("comparisons = %d, want 3", got)
	}
	if got := mc.ArrayAccesses(); got != 3 {
		t.Errorf("accesses = %d, want 3", got)
	}
}

func TestLinearMiss(t *testing.T) {
	data := []int32{5, 2, 8}
	mc := metrics.NewCollector[int32]()

	idx := Linear(data, 7, mc, viz.NewNullRecorder[int32]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
	if got := mc.Comparisons(); got != 3 {
		t.Errorf("comparisons = %d, want one per element (3)", got)
	}
}

func TestLinearDuplicatesReturnFirst(t *testing.T) {
	data := []int32{1, 7, 3, 7}
	idx := Linear(data, 7, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != 1 {
		t.Fatalf("index = %d, want first occurrence 1", idx)
	}
}

func TestLinearEmpty(t *testing.T) {
	idx := Linear(nil, int32(1), metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
}

func TestBinaryFindsTarget(t *testing.T) {
	data := []int32{1, 2, 5, 8, 9}
	mc := metrics.NewCollector[int32]()

	idx := Binary(data, 8, mc, viz.NewNullRecorder[int32]())
	if idx != 3 {
		t.Fatalf("index = %d, want 3", idx)
	}
	// mid 2 (value 5): eq + lt, mid 3 (value 8): eq.
	if got := mc.Comparisons(); got != 3 {
		t.Errorf("comparisons = %d, want 3", got)
	}
}

func TestBinaryMiss(t *testing.T) {
	data := []int32{1, 2, 5, 8, 9}
	idx := Binary(data, 6, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
}

func TestBinaryBoundaries(t *testing.T) {
	data := []int32{1, 2, 5, 8, 9}
	if idx := Binary(data, 1, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]()); idx != 0 {
		t.Errorf("first element: index = %d, want 0", idx)
	}
	if idx := Binary(data, 9, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]()); idx != 4 {
		t.Errorf("last element: index = %d, want 4", idx)
	}
}

func TestBinaryStrings(t *testing.T) {
	data := []string{"apple", "banana", "grape"}
	mc := metrics.NewCollector[string]()
	if idx := Binary(data, "banana", mc, viz.NewNullRecorder[string]()); idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}
}

// Metrics and answers must not depend on whether a trace is being captured.
func TestRecorderPresenceDoesNotChangeCounts(t *testing.T) {
	data := []int32{1, 2, 5, 8, 9}

	plain := metrics.NewCollector[int32]()
	idxPlain := Binary(data, 6, plain, viz.NewNullRecorder[int32]())

	traced := metrics.NewCollector[int32]()
	rec := viz.NewTraceRecorder[int32]()
	idxTraced := Binary(data, 6, traced, rec)

	if idxPlain != idxTraced {
		t.Fatalf("answers diverged: %d vs %d", idxPlain, idxTraced)
	}
	if plain.Comparisons() != traced.Comparisons() {
		t.Errorf("comparisons diverged: %d vs %d", plain.Comparisons(), traced.Comparisons())
	}
	if plain.ArrayAccesses() != traced.ArrayAccesses() {
		t.Errorf("accesses diverged: %d vs %d", plain.ArrayAccesses(), traced.ArrayAccesses())
	}
	if rec.Len() == 0 {
		t.Error("trace recorder captured nothing")
	}
}

func TestBinaryTraceShape(t *testing.T) {
	data := []int32{1, 2, 5, 8, 9}
	rec := viz.NewTraceRecorder[int32]()
	Binary(data, 8, metrics.NewCollector[int32](), rec)

	steps := rec.Steps()
	if steps[0].Kind != viz.KindInitial {
		t.Errorf("first step kind = %s, want INITIAL", steps[0].Kind)
	}
	if last := steps[len(steps)-1]; last.Kind != viz.KindFound {
		t.Errorf("last step kind = %s, want FOUND", last.Kind)
	}
	sawRange := false
	for _, s := range steps {
		if s.Kind == viz.KindRange {
			sawRange = true
			if s.Bounds == nil {
				t.Error("range step missing bounds")
			}
		}
	}
	if !sawRange {
		t.Error("no range step recorded")
	}
}
