package export

import (
	"fmt"
	"io"
	"sort"

	"algoviz/pkg/bench"
	"algoviz/pkg/engine"
)

// WriteResultsCSV writes raw run results, one row per run.
func WriteResultsCSV(w io.Writer, results []engine.Result) error {
	if _, err := fmt.Fprintln(w, "RunID,Operation,Algorithm,DatasetSize,Variant,DurationNS,Comparisons,Swaps,Accesses,NodesVisited,Found,FoundIndex"); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%s,%d,%d,%d,%d,%d,%t,%d\n",
			r.RunID, r.Operation, r.Algorithm, r.DatasetSize, r.Variant,
			r.DurationNS, r.Comparisons, r.Swaps, r.Accesses, r.NodesVisited,
			r.Found, r.FoundIndex)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsCSV writes the per-algorithm reduction, one row per algorithm
// in name order.
func WriteStatsCSV(w io.Writer, stats map[string]bench.Statistics) error {
	if _, err := fmt.Fprintln(w, "Algorithm,Runs,MinTimeNS,MaxTimeNS,AvgTimeNS,MedianTimeNS,MinComparisons,MaxComparisons,AvgComparisons,MinSwaps,MaxSwaps,AvgSwaps"); err != nil {
		return err
	}

	algos := make([]string, 0, len(stats))
	for algo := range stats {
		algos = append(algos, algo)
	}
	sort.Strings(algos)

	for _, algo := range algos {
		st := stats[algo]
		_, err := fmt.Fprintf(w, "%s,%d,%d,%d,%.1f,%.1f,%d,%d,%.1f,%d,%d,%.1f\n",
			st.Algorithm, st.Runs, st.MinTimeNS, st.MaxTimeNS, st.AvgTimeNS,
			st.MedianTimeNS, st.MinComparisons, st.MaxComparisons,
			st.AvgComparisons, st.MinSwaps, st.MaxSwaps, st.AvgSwaps)
		if err != nil {
			return err
		}
	}
	return nil
}
