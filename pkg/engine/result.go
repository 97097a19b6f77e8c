package engine

import (
	"time"

	"algoviz/pkg/common"
)

// Result is the immutable record of one completed run.
type Result struct {
	RunID        string         `json:"run_id"`
	Operation    string         `json:"operation"` // "search" or "sort"
	Algorithm    string         `json:"algorithm"`
	DatasetID    string         `json:"dataset_id"`
	DatasetSize  int            `json:"dataset_size"`
	Variant      common.Variant `json:"variant"`
	DurationNS   int64          `json:"duration_ns"`
	DurationMS   float64        `json:"duration_ms"`
	Comparisons  int64          `json:"comparisons"`
	Swaps        int64          `json:"swaps"`
	Accesses     int64          `json:"accesses"`
	NodesVisited int            `json:"nodes_visited"`
	Found        bool           `json:"found"`
	FoundIndex   int            `json:"found_index"`
	// Presorted marks the documented divergence: binary search
	// visualization over unsorted data sorts a private copy first, so the
	// displayed array differs from the caller's original order.
	Presorted       bool      `json:"presorted,omitempty"`
	TimeComplexity  string    `json:"time_complexity"`
	SpaceComplexity string    `json:"space_complexity"`
	CreatedAt       time.Time `json:"created_at"`
}

type complexity struct {
	time  string
	space string
}

var complexities = map[string]complexity{
	"linear":    {"O(n)", "O(1)"},
	"binary":    {"O(log n)", "O(1)"},
	"trie":      {"O(n*m) build / O(m) query", "O(n*m)"},
	"bfs":       {"O(n)", "O(n)"},
	"dfs":       {"O(n) avg, O(n^2) worst build", "O(n)"},
	"bubble":    {"O(n^2)", "O(1)"},
	"insertion": {"O(n^2)", "O(1)"},
	"selection": {"O(n^2)", "O(1)"},
	"quick":     {"O(n log n) avg", "O(log n)"},
	"merge":     {"O(n log n)", "O(n)"},
}
