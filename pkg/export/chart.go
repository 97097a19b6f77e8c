package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"algoviz/pkg/bench"
	"algoviz/pkg/engine"
)

// RenderBenchmarkChart writes a self-contained HTML page with two charts:
// average execution time per algorithm, and average comparisons per
// dataset size with one line per algorithm.
func RenderBenchmarkChart(w io.Writer, report *bench.Report) error {
	page := components.NewPage()
	page.AddCharts(timeBar(report.Stats), comparisonLine(report.Results))
	return page.Render(w)
}

func timeBar(stats map[string]bench.Statistics) *charts.Bar {
	algos := make([]string, 0, len(stats))
	for algo := range stats {
		algos = append(algos, algo)
	}
	sort.Strings(algos)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Execution Time",
			Subtitle: "milliseconds per run",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(algos)

	data := make([]opts.BarData, len(algos))
	for i, algo := range algos {
		data[i] = opts.BarData{Value: stats[algo].AvgTimeNS / 1e6}
	}
	bar.AddSeries("avg ms", data)
	return bar
}

func comparisonLine(results []engine.Result) *charts.Line {
	// avg comparisons per (algorithm, size)
	type key struct {
		algo string
		size int
	}
	sums := make(map[key]int64)
	counts := make(map[key]int64)
	algoSet := make(map[string]bool)
	sizeSet := make(map[int]bool)
	for _, res := range results {
		k := key{algo: res.Algorithm, size: res.DatasetSize}
		sums[k] += res.Comparisons
		counts[k]++
		algoSet[res.Algorithm] = true
		sizeSet[res.DatasetSize] = true
	}

	algos := make([]string, 0, len(algoSet))
	for algo := range algoSet {
		algos = append(algos, algo)
	}
	sort.Strings(algos)

	sizes := make([]int, 0, len(sizeSet))
	for size := range sizeSet {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	labels := make([]string, len(sizes))
	for i, size := range sizes {
		labels[i] = fmt.Sprintf("%d", size)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Comparisons by Dataset Size",
			Subtitle: "average per run",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(labels)

	for _, algo := range algos {
		data := make([]opts.LineData, len(sizes))
		for i, size := range sizes {
			k := key{algo: algo, size: size}
			if counts[k] == 0 {
				data[i] = opts.LineData{Value: nil}
				continue
			}
			data[i] = opts.LineData{Value: float64(sums[k]) / float64(counts[k])}
		}
		line.AddSeries(algo, data)
	}
	return line
}
