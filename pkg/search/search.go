// Package search holds the instrumented search kernels. Every kernel takes
// the run's metrics collector and a step recorder; counting goes through the
// collector's predicates only, so two kernels making the same logical
// decisions always report the same comparison totals regardless of whether
// the elements are integers or strings.
package search

import (
	"fmt"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

// Linear scans the array front to back and returns the first index where
// the target matches, or common.NotFound. No ordering precondition.
func Linear[E common.Element](data []E, target E, mc *metrics.Collector[E], rec viz.Recorder[E]) int {
	rec.Initial(data, fmt.Sprintf("Linear search for %v over %d elements", target, len(data)))

	for i := range data {
		mc.RecordArrayAccess(1)
		rec.Check(data, i, fmt.Sprintf("Comparing target with element at index %d", i))
		if mc.IsEqual(data[i], target) {
			rec.Found(data, i, fmt.Sprintf("Found %v at index %d", target, i))
			return i
		}
	}

	rec.NotFound(data, fmt.Sprintf("%v is not in the array", target))
	return common.NotFound
}

// Binary requires the array sorted ascending. On unsorted input the result
// is undefined; the engine decides whether to pre-sort (visualization runs
// do, and flag it). mid is computed as left+(right-left)/2 to avoid
// overflow on large arrays.
func Binary[E common.Element](data []E, target E, mc *metrics.Collector[E], rec viz.Recorder[E]) int {
	rec.Initial(data, fmt.Sprintf("Binary search for %v over %d elements", target, len(data)))

	left, right := 0, len(data)-1
	for left <= right {
		mid := left + (right-left)/2
		rec.Range(data, left, right, mid, fmt.Sprintf("Searching [%d, %d], probing mid %d", left, right, mid))

		mc.RecordArrayAccess(1)
		midVal := data[mid]
		if mc.IsEqual(midVal, target) {
			rec.Found(data, mid, fmt.Sprintf("Found %v at index %d", target, mid))
			return mid
		}
		if mc.IsLessThan(midVal, target) {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	rec.NotFound(data, fmt.Sprintf("%v is not in the array", target))
	return common.NotFound
}
