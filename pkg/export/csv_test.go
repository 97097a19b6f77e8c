package export

import (
	"strings"
	"testing"

	"algoviz/pkg/bench"
	"algoviz/pkg/common"
	"algoviz/pkg/engine"
)

func TestWriteResultsCSV(t *testing.T) {
	results := []engine.Result{
		{
			RunID: "r1", Operation: "search", Algorithm: "binary",
			DatasetSize: 100, Variant: common.VariantInt,
			DurationNS: 1500, Comparisons: 7, Accesses: 7,
			Found: true, FoundIndex: 42,
		},
		{
			RunID: "r2", Operation: "sort", Algorithm: "quick",
			DatasetSize: 100, Variant: common.VariantInt,
			DurationNS: 9000, Comparisons: 300, Swaps: 120, Accesses: 400,
			FoundIndex: -1,
		},
	}

	var sb strings.Builder
	if err := WriteResultsCSV(&sb, results); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "RunID,Operation,Algorithm") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "r1,search,binary,100,int,1500,7,0,7,0,true,42") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "r2,sort,quick") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteStatsCSVSortedByAlgorithm(t *testing.T) {
	stats := map[string]bench.Statistics{
		"quick":  {Algorithm: "quick", Runs: 2, AvgTimeNS: 100},
		"binary": {Algorithm: "binary", Runs: 2, AvgTimeNS: 50},
	}

	var sb strings.Builder
	if err := WriteStatsCSV(&sb, stats); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[1], "binary,") || !strings.HasPrefix(lines[2], "quick,") {
		t.Errorf("rows not in name order: %q, %q", lines[1], lines[2])
	}
}

func TestRenderBenchmarkChart(t *testing.T) {
	report := &bench.Report{
		Results: []engine.Result{
			{Algorithm: "linear", DatasetSize: 100, DurationNS: 500, Comparisons: 50},
			{Algorithm: "binary", DatasetSize: 100, DurationNS: 100, Comparisons: 7},
		},
	}
	report.Stats = bench.Reduce(report.Results)

	var sb strings.Builder
	if err := RenderBenchmarkChart(&sb, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()
	if !strings.Contains(html, "Average Execution Time") {
		t.Error("time chart title missing")
	}
	if !strings.Contains(html, "Comparisons by Dataset Size") {
		t.Error("comparison chart title missing")
	}
}
