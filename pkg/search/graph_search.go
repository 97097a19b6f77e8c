package search

import (
	"fmt"

	"algoviz/pkg/common"
	"algoviz/pkg/graph"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

// BFS converts the array to a complete binary tree and runs level-order
// traversal from node 0 with a FIFO frontier. Nodes are marked visited at
// enqueue time so nothing is enqueued twice. Each dequeue counts as one
// array access. Returns the matching node's source index (equal to the
// node ID for this layout) and the number of nodes visited.
// Integer variant only; the engine enforces that.
func BFS(data []int32, target int32, mc *metrics.Collector[int32], rec viz.Recorder[int32]) (int, int) {
	rec.Initial(data, fmt.Sprintf("BFS for %d over a complete binary tree of %d nodes", target, len(data)))

	g := graph.BuildCompleteTree(data)
	if g.Empty() {
		rec.NotFound(data, "Empty dataset")
		return common.NotFound, 0
	}

	frontier := []int{0}
	visited := map[int]bool{0: true}
	count := 0

	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		node := g.Nodes[id]

		mc.RecordArrayAccess(1)
		count++
		rec.Check(data, node.SourceIndex, fmt.Sprintf("Visiting node %d (value %d)", id, node.Value))
		if mc.IsEqual(node.Value, target) {
			rec.Found(data, node.SourceIndex, fmt.Sprintf("Found %d at node %d", target, id))
			return node.SourceIndex, count
		}

		for _, nb := range []int{node.Left, node.Right, node.Next} {
			if nb != graph.NoChild && !visited[nb] {
				visited[nb] = true
				frontier = append(frontier, nb)
			}
		}
	}

	rec.NotFound(data, fmt.Sprintf("%d is not in the tree", target))
	return common.NotFound, count
}

// DFS converts the array to a binary search tree (construction comparisons
// are counted) and runs iterative depth-first traversal with an explicit
// stack seeded with node 0. Duplicate pushes are allowed and discarded at
// pop time; each accepted pop counts as one array access. Children are
// pushed right-then-left so the left subtree is explored first, then the
// next edge. Returns the matching node's source index and nodes visited.
// Integer variant only.
func DFS(data []int32, target int32, mc *metrics.Collector[int32], rec viz.Recorder[int32]) (int, int) {
	rec.Initial(data, fmt.Sprintf("DFS for %d over a BST of %d nodes", target, len(data)))

	g := graph.BuildBST(data, mc)
	if g.Empty() {
		rec.NotFound(data, "Empty dataset")
		return common.NotFound, 0
	}

	stack := []int{0}
	visited := make(map[int]bool)
	count := 0

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		node := g.Nodes[id]

		mc.RecordArrayAccess(1)
		count++
		rec.Check(data, node.SourceIndex, fmt.Sprintf("Visiting node %d (value %d)", id, node.Value))
		if mc.IsEqual(node.Value, target) {
			rec.Found(data, node.SourceIndex, fmt.Sprintf("Found %d at node %d", target, id))
			return node.SourceIndex, count
		}

		if node.Right != graph.NoChild && !visited[node.Right] {
			stack = append(stack, node.Right)
		}
		if node.Left != graph.NoChild && !visited[node.Left] {
			stack = append(stack, node.Left)
		}
		if node.Next != graph.NoChild && !visited[node.Next] {
			stack = append(stack, node.Next)
		}
	}

	rec.NotFound(data, fmt.Sprintf("%d is not in the tree", target))
	return common.NotFound, count
}
