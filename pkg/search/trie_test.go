package search

import (
	"testing"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

func TestTrieFindsWord(t *testing.T) {
	data := []string{"apple", "banana", "grape"}
	mc := metrics.NewCollector[string]()

	idx := Trie(data, "banana", mc, viz.NewNullRecorder[string]())
	if idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}
	// Build touches every source string, the query one comparison per byte.
	if got := mc.ArrayAccesses(); got != 3 {
		t.Errorf("accesses = %d, want 3", got)
	}
	if got := mc.Comparisons(); got != int64(len("banana")) {
		t.Errorf("comparisons = %d, want %d", got, len("banana"))
	}
}

func TestTriePrefixIsNotAWord(t *testing.T) {
	data := []string{"banana"}
	idx := Trie(data, "ban", metrics.NewCollector[string](), viz.NewNullRecorder[string]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound for bare prefix", idx)
	}
}

func TestTrieMissStopsAtDivergence(t *testing.T) {
	data := []string{"apple"}
	mc := metrics.NewCollector[string]()

	idx := Trie(data, "apricot", mc, viz.NewNullRecorder[string]())
	if idx != common.NotFound {
		t.Fatalf("index = %d, want NotFound", idx)
	}
	// "ap" matches, the third byte has no edge.
	if got := mc.Comparisons(); got != 3 {
		t.Errorf("comparisons = %d, want 3", got)
	}
}

func TestTrieDuplicatesKeepFirstIndex(t *testing.T) {
	data := []string{"kiwi", "mango", "kiwi"}
	idx := Trie(data, "kiwi", metrics.NewCollector[string](), viz.NewNullRecorder[string]())
	if idx != 0 {
		t.Fatalf("index = %d, want first occurrence 0", idx)
	}
}

func TestTrieEmptyTargetMatchesEmptyWord(t *testing.T) {
	if idx := Trie([]string{"a"}, "", metrics.NewCollector[string](), viz.NewNullRecorder[string]()); idx != common.NotFound {
		t.Errorf("empty target over non-empty words: index = %d, want NotFound", idx)
	}
	if idx := Trie([]string{"", "a"}, "", metrics.NewCollector[string](), viz.NewNullRecorder[string]()); idx != 0 {
		t.Errorf("empty word stored: index = %d, want 0", idx)
	}
}

func TestTrieHighBytesCollapse(t *testing.T) {
	// Bytes >= 128 share slot 127; lookups still terminate.
	data := []string{"café"}
	idx := Trie(data, "café", metrics.NewCollector[string](), viz.NewNullRecorder[string]())
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
}
