package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"algoviz/pkg/client"
	"algoviz/pkg/engine"
)

const Prompt = "algoviz> "

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

func main() {
	serverAddr := flag.String("addr", "localhost:9090", "AlgoViz TCP Server Address")
	flag.Parse()

	fmt.Printf("AlgoViz CLI (Target: %s)\n", *serverAddr)
	fmt.Println("Connecting...")

	cli, err := client.Dial(*serverAddr)
	if err != nil {
		errColor.Printf("Connection failed: %v\n", err)
		fmt.Println("Tip: Ensure the server is running (e.g. go run cmd/server/main.go).")
		return
	}
	defer cli.Close()
	okColor.Println("Connected! Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "search":
			handleSearch(cli, parts)
		case "sort":
			handleSort(cli, parts)
		case "stats":
			handleStats(cli)
		case "ping":
			handlePing(cli)
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			errColor.Printf("Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
}

func handleSearch(cli *client.Client, parts []string) {
	if len(parts) < 4 {
		fmt.Println("Usage: search <dataset_id> <algorithm> <target>")
		return
	}

	start := time.Now()
	out, err := cli.Search(parts[1], parts[2], parts[3])
	duration := time.Since(start)

	if err != nil {
		errColor.Printf("Error: %v\n", err)
		return
	}
	printResult(out.Result, duration)
}

func handleSort(cli *client.Client, parts []string) {
	if len(parts) < 3 {
		fmt.Println("Usage: sort <dataset_id> <algorithm>")
		return
	}

	start := time.Now()
	out, err := cli.Sort(parts[1], parts[2])
	duration := time.Since(start)

	if err != nil {
		errColor.Printf("Error: %v\n", err)
		return
	}
	printResult(out.Result, duration)
}

func handleStats(cli *client.Client) {
	stats, err := cli.Stats()
	if err != nil {
		errColor.Printf("Error: %v\n", err)
		return
	}
	for k, v := range stats {
		infoColor.Printf("  %-18s %v\n", k, v)
	}
}

func handlePing(cli *client.Client) {
	start := time.Now()
	if err := cli.Ping(); err != nil {
		errColor.Printf("Error: %v\n", err)
		return
	}
	okColor.Printf("PONG (%v)\n", time.Since(start))
}

func printResult(res *engine.Result, roundTrip time.Duration) {
	if res.Operation == "search" {
		if res.Found {
			okColor.Printf("Found at index %d\n", res.FoundIndex)
		} else {
			errColor.Println("Not found")
		}
	} else {
		okColor.Println("Sorted")
	}
	fmt.Printf("  algorithm:   %s (%s time, %s space)\n", res.Algorithm, res.TimeComplexity, res.SpaceComplexity)
	fmt.Printf("  comparisons: %d  swaps: %d  accesses: %d\n", res.Comparisons, res.Swaps, res.Accesses)
	if res.NodesVisited > 0 {
		fmt.Printf("  nodes:       %d\n", res.NodesVisited)
	}
	fmt.Printf("  engine time: %.3fms  round trip: %v\n", res.DurationMS, roundTrip)
}

func printHelp() {
	fmt.Println(`
Commands:
  search <dataset_id> <algo> <target>   Run a search (linear/binary/trie/bfs/dfs)
  sort <dataset_id> <algo>              Run a sort (bubble/insertion/selection/quick/merge)
  stats                                 Show workload counters
  ping                                  Check the connection
  exit                                  Exit CLI
	`)
}
