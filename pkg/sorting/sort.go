// Package sorting mirrors pkg/search structurally: the same collector and
// recorder are threaded through every kernel, and element exchanges are the
// only thing counted as swaps. All kernels sort ascending and mutate the
// slice they are given; the engine hands them an exclusively-owned copy.
package sorting

import (
	"fmt"

	"algoviz/pkg/common"
	"algoviz/pkg/metrics"
	"algoviz/pkg/viz"
)

func Bubble[E common.Element](data []E, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	rec.Initial(data, fmt.Sprintf("Bubble sort over %d elements", len(data)))

	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			mc.RecordArrayAccess(2)
			if mc.IsLessThan(data[j+1], data[j]) {
				data[j], data[j+1] = data[j+1], data[j]
				mc.RecordSwap(1)
				rec.Check(data, j, fmt.Sprintf("Swapped indices %d and %d", j, j+1))
				swapped = true
			}
		}
		// 本轮没有交换说明已经有序，提前结束
		if !swapped {
			break
		}
	}

	rec.Found(data, common.NotFound, "Array sorted")
}

func Insertion[E common.Element](data []E, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	rec.Initial(data, fmt.Sprintf("Insertion sort over %d elements", len(data)))

	for i := 1; i < len(data); i++ {
		mc.RecordArrayAccess(1)
		key := data[i]
		j := i - 1
		for j >= 0 {
			mc.RecordArrayAccess(1)
			if !mc.IsLessThan(key, data[j]) {
				break
			}
			data[j+1] = data[j]
			mc.RecordSwap(1)
			mc.RecordArrayAccess(1)
			j--
		}
		data[j+1] = key
		mc.RecordArrayAccess(1)
		rec.Check(data, j+1, fmt.Sprintf("Inserted element at index %d", j+1))
	}

	rec.Found(data, common.NotFound, "Array sorted")
}

func Selection[E common.Element](data []E, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	rec.Initial(data, fmt.Sprintf("Selection sort over %d elements", len(data)))

	n := len(data)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			mc.RecordArrayAccess(2)
			if mc.IsLessThan(data[j], data[min]) {
				min = j
			}
		}
		if min != i {
			data[i], data[min] = data[min], data[i]
			mc.RecordSwap(1)
			rec.Check(data, i, fmt.Sprintf("Moved minimum of [%d, %d) to index %d", i, n, i))
		}
	}

	rec.Found(data, common.NotFound, "Array sorted")
}

func Quick[E common.Element](data []E, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	rec.Initial(data, fmt.Sprintf("Quick sort over %d elements", len(data)))
	quick(data, 0, len(data)-1, mc, rec)
	rec.Found(data, common.NotFound, "Array sorted")
}

func quick[E common.Element](data []E, low, high int, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	if low >= high {
		return
	}
	p := partition(data, low, high, mc)
	rec.Range(data, low, high, p, fmt.Sprintf("Partitioned [%d, %d] around pivot at %d", low, high, p))
	quick(data, low, p-1, mc, rec)
	quick(data, p+1, high, mc, rec)
}

// partition 使用 Lomuto 方案，pivot 取区间最后一个元素。
func partition[E common.Element](data []E, low, high int, mc *metrics.Collector[E]) int {
	mc.RecordArrayAccess(1)
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		mc.RecordArrayAccess(1)
		if mc.IsLessThanOrEqual(data[j], pivot) {
			i++
			if i != j {
				data[i], data[j] = data[j], data[i]
				mc.RecordSwap(1)
			}
		}
	}
	if i+1 != high {
		data[i+1], data[high] = data[high], data[i+1]
		mc.RecordSwap(1)
	}
	return i + 1
}

func Merge[E common.Element](data []E, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	rec.Initial(data, fmt.Sprintf("Merge sort over %d elements", len(data)))
	if len(data) > 1 {
		mergeSort(data, 0, len(data)-1, mc, rec)
	}
	rec.Found(data, common.NotFound, "Array sorted")
}

func mergeSort[E common.Element](data []E, left, right int, mc *metrics.Collector[E], rec viz.Recorder[E]) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, left, mid, mc, rec)
	mergeSort(data, mid+1, right, mc, rec)
	merge(data, left, mid, right, mc)
	rec.Range(data, left, right, mid, fmt.Sprintf("Merged [%d, %d] and [%d, %d]", left, mid, mid+1, right))
}

// merge counts element copies as array accesses, not swaps: nothing is
// exchanged in place, so a swap count here would not be comparable with
// the in-place sorts.
func merge[E common.Element](data []E, left, mid, right int, mc *metrics.Collector[E]) {
	lhs := make([]E, mid-left+1)
	rhs := make([]E, right-mid)
	copy(lhs, data[left:mid+1])
	copy(rhs, data[mid+1:right+1])
	mc.RecordArrayAccess(int64(len(lhs) + len(rhs)))

	i, j, k := 0, 0, left
	for i < len(lhs) && j < len(rhs) {
		if mc.IsLessThanOrEqual(lhs[i], rhs[j]) {
			data[k] = lhs[i]
			i++
		} else {
			data[k] = rhs[j]
			j++
		}
		mc.RecordArrayAccess(1)
		k++
	}
	for i < len(lhs) {
		data[k] = lhs[i]
		mc.RecordArrayAccess(1)
		i++
		k++
	}
	for j < len(rhs) {
		data[k] = rhs[j]
		mc.RecordArrayAccess(1)
		j++
		k++
	}
}
