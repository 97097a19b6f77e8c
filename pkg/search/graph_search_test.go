package search

import (
	"testing"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

func TestBFSVisitsLevelOrder(t *testing.T) {
	// Complete tree: 10 at the root, 40/50 on the bottom level.
	data := []int32{10, 20, 30, 40, 50}
	mc := metrics.NewCollector[int32]()

	idx, visited := BFS(data, 50, mc, viz.NewNullRecorder[int32]())
	if idx != 4 {
		t.Fatalf("index = %d, want 4", idx)
	}
	if visited != 5 {
		t.Errorf("visited = %d, want all 5 nodes in level order", visited)
	}
}

func TestBFSFindsRootImmediately(t *testing.T) {
	data := []int32{10, 20, 30}
	mc := metrics.NewCollector[int32]()

	idx, visited := BFS(data, 10, mc, viz.NewNullRecorder[int32]())
	if idx != 0 || visited != 1 {
		t.Fatalf("got (%d, %d), want (0, 1)", idx, visited)
	}
	if got := mc.Comparisons(); got != 1 {
		t.Errorf("comparisons = %d, want 1", got)
	}
}

func TestBFSMissVisitsEverything(t *testing.T) {
	data := []int32{10, 20, 30}
	idx, visited := BFS(data, 99, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestBFSEmpty(t *testing.T) {
	idx, visited := BFS(nil, 1, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound || visited != 0 {
		t.Fatalf("got (%d, %d), want (NotFound, 0)", idx, visited)
	}
}

func TestDFSReportsSourceIndex(t *testing.T) {
	// BST from insertion order 5,2,8,1,9. The 9 sits bottom-right but its
	// source index is 4.
	data := []int32{5, 2, 8, 1, 9}
	mc := metrics.NewCollector[int32]()

	idx, visited := DFS(data, 9, mc, viz.NewNullRecorder[int32]())
	if idx != 4 {
		t.Fatalf("index = %d, want source index 4", idx)
	}
	if visited == 0 || visited > 5 {
		t.Errorf("visited = %d, want within (0, 5]", visited)
	}
	// BST construction comparisons are part of the run's cost.
	if mc.Comparisons() <= int64(visited) {
		t.Errorf("comparisons = %d, should include construction cost", mc.Comparisons())
	}
}

func TestDFSExploresLeftFirst(t *testing.T) {
	data := []int32{5, 2, 8}

	// 2 sits left of the root, so it is the second node visited.
	idx, visited := DFS(data, 2, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}
	if visited != 2 {
		t.Errorf("visited = %d, want 2 (root then left child)", visited)
	}
}

func TestDFSMiss(t *testing.T) {
	data := []int32{5, 2, 8}
	idx, visited := DFS(data, 99, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestDFSEmpty(t *testing.T) {
	idx, visited := DFS(nil, 1, metrics.NewCollector[int32](), viz.NewNullRecorder[int32]())
	if idx != common.NotFound || visited != 0 {
		t.Fatalf("got (%d, %d), want (NotFound, 0)", idx, visited)
	}
}
