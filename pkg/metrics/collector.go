package metrics

import "algoviz/pkg/common"

// Collector 统计单次算法运行的比较/交换/访问次数。
// One collector per run; it is never shared across concurrent runs,
// so plain int64 counters are enough (no atomics, unlike pkg/monitor).
//
// Every counted comparison on dataset elements must go through IsEqual /
// IsLessThan / IsLessThanOrEqual. Comparing elements directly bypasses the
// counter and makes cross-algorithm numbers meaningless.
type Collector[E common.Element] struct {
	comparisons   int64
	swaps         int64
	arrayAccesses int64
}

func NewCollector[E common.Element]() *Collector[E] {
	return &Collector[E]{}
}

func (c *Collector[E]) RecordComparison(n int64) {
	if n < 0 {
		return
	}
	c.comparisons += n
}

func (c *Collector[E]) RecordSwap(n int64) {
	if n < 0 {
		return
	}
	c.swaps += n
}

func (c *Collector[E]) RecordArrayAccess(n int64) {
	if n < 0 {
		return
	}
	c.arrayAccesses += n
}

// IsEqual answers a == b and records exactly one comparison.
func (c *Collector[E]) IsEqual(a, b E) bool {
	c.comparisons++
	if av, ok := any(a).(int32); ok {
		return av == any(b).(int32)
	}
	return a == b
}

// IsLessThan answers a < b and records exactly one comparison.
// The int32 branch keeps primitive comparisons on a direct path;
// both branches increment identically so integer and string runs
// stay comparable.
func (c *Collector[E]) IsLessThan(a, b E) bool {
	c.comparisons++
	if av, ok := any(a).(int32); ok {
		return av < any(b).(int32)
	}
	return a < b
}

// IsLessThanOrEqual answers a <= b and records exactly one comparison.
func (c *Collector[E]) IsLessThanOrEqual(a, b E) bool {
	c.comparisons++
	if av, ok := any(a).(int32); ok {
		return av <= any(b).(int32)
	}
	return a <= b
}

func (c *Collector[E]) Comparisons() int64   { return c.comparisons }
func (c *Collector[E]) Swaps() int64         { return c.swaps }
func (c *Collector[E]) ArrayAccesses() int64 { return c.arrayAccesses }
