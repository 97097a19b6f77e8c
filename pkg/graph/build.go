package graph

import (
	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
)

// BuildCompleteTree lays the array out as a complete binary tree:
// node i gets children 2i+1 and 2i+2 when they fall inside the array.
// Node IDs equal array indices by construction. Empty input produces an
// empty graph, never a fabricated root.
func BuildCompleteTree[E common.Element](values []E) *Graph[E] {
	g := New[E]()
	if len(values) == 0 {
		return g
	}

	for i, v := range values {
		g.add(v, i)
	}
	for i := range values {
		left := 2*i + 1
		right := 2*i + 2
		if left < len(values) {
			g.Nodes[i].Left = left
		}
		if right < len(values) {
			g.Nodes[i].Right = right
		}
	}
	return g
}

// BuildBST inserts the array elements in original order into a binary
// search tree. Comparisons go through the collector so construction cost
// shows up in the run's counters. Equal keys descend right, which keeps
// duplicate placement stable. No rebalancing: already-sorted input
// degrades to a linked list and that is the caller's problem.
func BuildBST[E common.Element](values []E, mc *metrics.Collector[E]) *Graph[E] {
	g := New[E]()
	if len(values) == 0 {
		return g
	}

	g.add(values[0], 0)
	for i := 1; i < len(values); i++ {
		v := values[i]
		cur := g.Nodes[0]
		for {
			if mc.IsLessThan(v, cur.Value) {
				if cur.Left == NoChild {
					cur.Left = g.add(v, i).ID
					break
				}
				cur = g.Nodes[cur.Left]
			} else {
				if cur.Right == NoChild {
					cur.Right = g.add(v, i).ID
					break
				}
				cur = g.Nodes[cur.Right]
			}
		}
	}
	return g
}
