// Command chesscore-perft runs the compiled-in perft fixtures (or an
// arbitrary FEN) and reports leaf-node counts per depth, the CLI front end
// for the correctness oracle spec.md §4.8 describes.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	chess "github.com/ravensworth/chesscore"
)

func main() {
	var (
		name     = flag.String("name", "", "run only the named fixture from the compiled-in table")
		fen      = flag.String("fen", "", "run perft against an arbitrary FEN instead of the fixture table")
		depth    = flag.Int("depth", 5, "search depth when -fen is given")
		parallel = flag.Bool("parallel", false, "use the goroutine worker-pool perft driver")
	)
	flag.Parse()

	if *fen != "" {
		pos, err := chess.ParsePosition(*fen)
		if err != nil {
			log.Fatalf("chesscore-perft: %s", err)
		}
		runOne(pos, "custom", *depth, *parallel)
		return
	}

	for _, cfg := range chess.PerftConfigs {
		if *name != "" && cfg.Name != *name {
			continue
		}
		pos, err := chess.ParsePosition(cfg.FEN)
		if err != nil {
			log.Fatalf("chesscore-perft: fixture %s: %s", cfg.Name, err)
		}
		for depth, want := range cfg.DepthLevelResults {
			start := time.Now()
			var got uint64
			if *parallel {
				got = pos.ParallelPerft(depth)
			} else {
				got = pos.Perft(depth)
			}
			status := "ok"
			if got != want {
				status = "MISMATCH"
			}
			fmt.Printf("%-12s depth=%d nodes=%-10d want=%-10d %s (%s)\n",
				cfg.Name, depth, got, want, status, time.Since(start))
		}
	}
}

func runOne(pos chess.Position, name string, depth int, parallel bool) {
	start := time.Now()
	var nodes uint64
	if parallel {
		nodes = pos.ParallelPerft(depth)
	} else {
		nodes = pos.Perft(depth)
	}
	fmt.Printf("%-12s depth=%d nodes=%d (%s)\n", name, depth, nodes, time.Since(start))
}
