package graph

import "algoviz/pkg/common"

// NoChild 表示该方向没有子节点。
const NoChild = -1

// Node is one vertex of a converted dataset. SourceIndex remembers which
// array position the value came from; traversal results report it rather
// than the node ID, since ID-assignment order is a construction detail.
type Node[E common.Element] struct {
	ID          int `json:"id"`
	Value       E   `json:"value"`
	SourceIndex int `json:"source_index"`
	Left        int `json:"left"`
	Right       int `json:"right"`
	Next        int `json:"next"`
}

// Graph maps node IDs to nodes. Node 0 is always the root of a non-empty
// graph; every node is reachable from it via Left/Right/Next edges.
type Graph[E common.Element] struct {
	Nodes map[int]*Node[E]
}

func New[E common.Element]() *Graph[E] {
	return &Graph[E]{Nodes: make(map[int]*Node[E])}
}

func (g *Graph[E]) Len() int { return len(g.Nodes) }

func (g *Graph[E]) Empty() bool { return len(g.Nodes) == 0 }

// Root returns node 0, or nil for an empty graph.
func (g *Graph[E]) Root() *Node[E] { return g.Nodes[0] }

func (g *Graph[E]) add(value E, sourceIndex int) *Node[E] {
	n := &Node[E]{
		ID:          len(g.Nodes),
		Value:       value,
		SourceIndex: sourceIndex,
		Left:        NoChild,
		Right:       NoChild,
		Next:        NoChild,
	}
	g.Nodes[n.ID] = n
	return n
}
