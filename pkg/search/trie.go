package search

import (
	"fmt"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

// trieFanout 每个节点 128 路分支，按字节索引；>=128 的字节折叠到槽 127。
const trieFanout = 128

type trieNode struct {
	children   [trieFanout]*trieNode
	terminal   bool
	firstIndex int
}

func newTrieNode() *trieNode {
	return &trieNode{firstIndex: common.NotFound}
}

func trieSlot(b byte) int {
	if b >= trieFanout {
		return trieFanout - 1
	}
	return int(b)
}

// Trie builds a 128-ary trie from the dataset and walks it for the target.
// String variant only; the engine rejects integer datasets before getting
// here. Build records one array access per source string, the query one
// comparison per target byte. A hit requires the terminal node to be
// end-of-word and returns the first original index stored there, so
// duplicates keep first-occurrence semantics.
func Trie(data []string, target string, mc *metrics.Collector[string], rec viz.Recorder[string]) int {
	rec.Initial(data, fmt.Sprintf("Trie search for %q over %d strings", target, len(data)))

	root := newTrieNode()
	for i, word := range data {
		mc.RecordArrayAccess(1)
		cur := root
		for j := 0; j < len(word); j++ {
			slot := trieSlot(word[j])
			if cur.children[slot] == nil {
				cur.children[slot] = newTrieNode()
			}
			cur = cur.children[slot]
		}
		if !cur.terminal {
			cur.terminal = true
			cur.firstIndex = i
		}
	}

	cur := root
	for j := 0; j < len(target); j++ {
		mc.RecordComparison(1)
		slot := trieSlot(target[j])
		if cur.children[slot] == nil {
			rec.NotFound(data, fmt.Sprintf("No trie path for %q past %d characters", target, j))
			return common.NotFound
		}
		cur = cur.children[slot]
	}

	if cur.terminal {
		rec.Found(data, cur.firstIndex, fmt.Sprintf("Found %q at index %d", target, cur.firstIndex))
		return cur.firstIndex
	}

	rec.NotFound(data, fmt.Sprintf("%q is a prefix but not a stored word", target))
	return common.NotFound
}
