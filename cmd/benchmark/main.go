package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"algoviz/pkg/bench"
	"algoviz/pkg/dataset"
	"algoviz/pkg/engine"
	"algoviz/pkg/export"
)

func main() {
	algos := flag.String("algos", "linear,binary,bfs,dfs,bubble,quick,merge", "Comma-separated algorithm list")
	sizes := flag.String("sizes", "100,1000,10000", "Comma-separated dataset sizes")
	runs := flag.Int("runs", 5, "Runs per (algorithm, size) pair")
	parallel := flag.Int("parallel", 4, "Concurrent runs")
	seed := flag.Int64("seed", 42, "Base RNG seed")
	csvOut := flag.String("csv", "", "Write raw results CSV to this file")
	htmlOut := flag.String("html", "", "Write benchmark charts HTML to this file")
	flag.Parse()

	opts := bench.Options{
		Algorithms:  splitList(*algos),
		Sizes:       parseSizes(*sizes),
		RunsPerSize: *runs,
		Parallelism: *parallel,
		Seed:        *seed,
	}

	fmt.Printf("AlgoViz Benchmark (%d algorithms x %d sizes x %d runs)\n",
		len(opts.Algorithms), len(opts.Sizes), opts.RunsPerSize)

	// Standalone engine: benchmark datasets are ephemeral and results stay
	// in the report, so no archive is attached.
	eng := engine.New(dataset.NewRegistry(), nil, 0)

	start := time.Now()
	report, err := bench.Run(eng, opts)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
	fmt.Printf("Completed %s runs in %v\n\n",
		humanize.Comma(int64(len(report.Results))), time.Since(start))

	printStats(report)

	if *csvOut != "" {
		writeCSV(*csvOut, report)
	}
	if *htmlOut != "" {
		writeHTML(*htmlOut, report)
	}
}

func printStats(report *bench.Report) {
	algos := make([]string, 0, len(report.Stats))
	for algo := range report.Stats {
		algos = append(algos, algo)
	}
	sort.Strings(algos)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Algorithm", "Runs", "Avg Time", "Median", "Avg Cmp", "Avg Swaps", "Sizes"})
	for _, algo := range algos {
		st := report.Stats[algo]
		t.AppendRow(table.Row{
			st.Algorithm,
			st.Runs,
			time.Duration(st.AvgTimeNS).Round(time.Microsecond),
			time.Duration(st.MedianTimeNS).Round(time.Microsecond),
			humanize.CommafWithDigits(st.AvgComparisons, 1),
			humanize.CommafWithDigits(st.AvgSwaps, 1),
			joinSizes(st.Sizes),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func writeCSV(path string, report *bench.Report) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := export.WriteResultsCSV(f, report.Results); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}
	fmt.Printf("Raw results written to %s\n", path)
}

func writeHTML(path string, report *bench.Report) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := export.RenderBenchmarkChart(f, report); err != nil {
		log.Fatalf("Failed to render charts: %v", err)
	}
	fmt.Printf("Charts written to %s\n", path)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSizes(s string) []int {
	var out []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			log.Fatalf("Invalid size %q", part)
		}
		out = append(out, n)
	}
	return out
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, ",")
}
