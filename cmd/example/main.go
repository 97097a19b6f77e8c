package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"algoviz/pkg/client"
	"algoviz/pkg/dataset"
)

// Creates a dataset over HTTP, then runs a search and a sort over the
// binary TCP channel.
func main() {
	fmt.Println("Connecting to AlgoViz...")
	cli, err := client.Dial("localhost:9090")
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer cli.Close()

	ds := generateDataset("http://localhost:8080", 1000)
	fmt.Printf("Generated dataset %s (%d sorted integers)\n", ds.ID, ds.Size())

	target := fmt.Sprintf("%d", ds.Ints[ds.Size()/2])
	fmt.Printf("Searching for %s with binary search...\n", target)
	start := time.Now()
	out, err := cli.Search(ds.ID, "binary", target)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	fmt.Printf("Found at index %d after %d comparisons (in %v)\n",
		out.Result.FoundIndex, out.Result.Comparisons, time.Since(start))

	fmt.Println("Sorting the same dataset with quicksort...")
	start = time.Now()
	out, err = cli.Sort(ds.ID, "quick")
	if err != nil {
		log.Fatalf("Sort failed: %v", err)
	}
	fmt.Printf("Sorted %d elements, %d comparisons, %d swaps (in %v)\n",
		out.Result.DatasetSize, out.Result.Comparisons, out.Result.Swaps, time.Since(start))
}

func generateDataset(baseURL string, size int) *dataset.Dataset {
	body, _ := json.Marshal(map[string]interface{}{
		"name": "sdk-example",
		"kind": "sorted",
		"size": size,
		"seed": time.Now().UnixNano(),
	})

	resp, err := http.Post(baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Generate returned status %d", resp.StatusCode)
	}

	var ds dataset.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		log.Fatalf("Failed to decode dataset: %v", err)
	}
	return &ds
}
