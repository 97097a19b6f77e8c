package bench

import (
	"sort"

	"algoviz/pkg/engine"
)

// Statistics is the per-algorithm reduction over a result set.
type Statistics struct {
	Algorithm      string  `json:"algorithm"`
	Runs           int     `json:"runs"`
	MinTimeNS      int64   `json:"min_time_ns"`
	MaxTimeNS      int64   `json:"max_time_ns"`
	AvgTimeNS      float64 `json:"avg_time_ns"`
	MedianTimeNS   float64 `json:"median_time_ns"`
	MinComparisons int64   `json:"min_comparisons"`
	MaxComparisons int64   `json:"max_comparisons"`
	AvgComparisons float64 `json:"avg_comparisons"`
	MinSwaps       int64   `json:"min_swaps"`
	MaxSwaps       int64   `json:"max_swaps"`
	AvgSwaps       float64 `json:"avg_swaps"`
	Sizes          []int   `json:"sizes"`
}

// Reduce folds raw results into per-algorithm statistics. Pure: it never
// mutates or discards its input, so callers can re-reduce whenever the
// underlying result set changes.
func Reduce(results []engine.Result) map[string]Statistics {
	grouped := make(map[string][]engine.Result)
	for _, res := range results {
		grouped[res.Algorithm] = append(grouped[res.Algorithm], res)
	}

	stats := make(map[string]Statistics, len(grouped))
	for algo, group := range grouped {
		stats[algo] = reduceOne(algo, group)
	}
	return stats
}

func reduceOne(algo string, group []engine.Result) Statistics {
	st := Statistics{
		Algorithm:      algo,
		Runs:           len(group),
		MinTimeNS:      group[0].DurationNS,
		MaxTimeNS:      group[0].DurationNS,
		MinComparisons: group[0].Comparisons,
		MaxComparisons: group[0].Comparisons,
		MinSwaps:       group[0].Swaps,
		MaxSwaps:       group[0].Swaps,
	}

	times := make([]int64, 0, len(group))
	sizes := make(map[int]bool)
	var sumTime, sumComparisons, sumSwaps int64

	for _, res := range group {
		times = append(times, res.DurationNS)
		sizes[res.DatasetSize] = true
		sumTime += res.DurationNS
		sumComparisons += res.Comparisons
		sumSwaps += res.Swaps

		if res.DurationNS < st.MinTimeNS {
			st.MinTimeNS = res.DurationNS
		}
		if res.DurationNS > st.MaxTimeNS {
			st.MaxTimeNS = res.DurationNS
		}
		if res.Comparisons < st.MinComparisons {
			st.MinComparisons = res.Comparisons
		}
		if res.Comparisons > st.MaxComparisons {
			st.MaxComparisons = res.Comparisons
		}
		if res.Swaps < st.MinSwaps {
			st.MinSwaps = res.Swaps
		}
		if res.Swaps > st.MaxSwaps {
			st.MaxSwaps = res.Swaps
		}
	}

	n := float64(len(group))
	st.AvgTimeNS = float64(sumTime) / n
	st.AvgComparisons = float64(sumComparisons) / n
	st.AvgSwaps = float64(sumSwaps) / n
	st.MedianTimeNS = median(times)

	for size := range sizes {
		st.Sizes = append(st.Sizes, size)
	}
	sort.Ints(st.Sizes)
	return st
}

// median uses the two-middle-average rule for even sample counts.
func median(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]int64, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
