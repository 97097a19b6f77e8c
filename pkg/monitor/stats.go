package monitor

import (
	"sync/atomic"
)

// WorkloadStats tracks engine-level run counts. Unlike pkg/metrics these
// counters outlive individual runs and are shared across goroutines.
type WorkloadStats struct {
	SearchCount    uint64
	SortCount      uint64
	BenchmarkCount uint64
	HitCount       uint64
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordSearch() {
	atomic.AddUint64(&ws.SearchCount, 1)
}

func (ws *WorkloadStats) RecordSort() {
	atomic.AddUint64(&ws.SortCount, 1)
}

func (ws *WorkloadStats) RecordBenchmark() {
	atomic.AddUint64(&ws.BenchmarkCount, 1)
}

// RecordHit 记录一次命中（搜索找到目标）。
func (ws *WorkloadStats) RecordHit() {
	atomic.AddUint64(&ws.HitCount, 1)
}

// GetHitRatio returns hits per search, or 0 when nothing ran yet.
func (ws *WorkloadStats) GetHitRatio() float64 {
	searches := atomic.LoadUint64(&ws.SearchCount)
	hits := atomic.LoadUint64(&ws.HitCount)

	if searches == 0 {
		return 0.0
	}
	return float64(hits) / float64(searches)
}

func (ws *WorkloadStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"searches":   atomic.LoadUint64(&ws.SearchCount),
		"sorts":      atomic.LoadUint64(&ws.SortCount),
		"benchmarks": atomic.LoadUint64(&ws.BenchmarkCount),
		"hits":       atomic.LoadUint64(&ws.HitCount),
		"hit_ratio":  ws.GetHitRatio(),
	}
}
