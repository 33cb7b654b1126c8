package chess

import (
	"runtime"
	"sync"
)

// Perft counts the leaf nodes of the legal move tree rooted at pos to the
// given depth (spec.md §4.8), the canonical correctness oracle for a move
// generator: any mismatch against a known-good node count pinpoints a
// move-generation bug. Grounded on original_source/src/perft.rs.
func (pos *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var pseudo MoveList
	pos.GeneratePseudoLegal(&pseudo)

	var nodes uint64
	for _, m := range pseudo.Slice() {
		next := pos.Apply(m)
		if next.IsInCheck(pos.SideToMove()) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += next.Perft(depth - 1)
	}
	return nodes
}

// ParallelPerft splits the root's legal moves across a worker pool and sums
// their subtree counts, grounded on the teacher's parallel_scanner.go
// worker-pool-over-channel shape (goroutines reading a work channel, a
// sync.WaitGroup closing the result channel). Each subtree is independent,
// so this is the one sanctioned concurrency point in the engine (spec.md §5).
func (pos *Position) ParallelPerft(depth int) uint64 {
	if depth <= 1 {
		return pos.Perft(depth)
	}

	var pseudo MoveList
	pos.GeneratePseudoLegal(&pseudo)

	type job struct{ next Position }
	jobs := make(chan job)
	results := make(chan uint64)

	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- j.next.Perft(depth - 1)
			}
		}()
	}

	go func() {
		for _, m := range pseudo.Slice() {
			next := pos.Apply(m)
			if next.IsInCheck(pos.SideToMove()) {
				continue
			}
			jobs <- job{next}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var total uint64
	for n := range results {
		total += n
	}
	return total
}

// PerftConfig names one canonical perft fixture: a FEN and the known-good
// leaf count at each depth from 0 (grounded on
// original_source/src/perft.rs's PerftConfig/init_perft_configs, using
// https://www.chessprogramming.org/Perft_Results as the source of truth).
type PerftConfig struct {
	Name              string
	FEN               string
	DepthLevelResults []uint64
}

// PerftConfigs is the compiled-in table of canonical perft fixtures (spec.md
// §6.4/§8), trimmed to depths this engine can run in a test's time budget;
// the original engine's configs go deeper than is practical in CI.
var PerftConfigs = []PerftConfig{
	{
		Name:              "startpos",
		FEN:               "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		DepthLevelResults: []uint64{1, 20, 400, 8902, 197281, 4865609},
	},
	{
		Name:              "kiwipete",
		FEN:               "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		DepthLevelResults: []uint64{1, 48, 2039, 97862, 4085603},
	},
	{
		Name:              "pos3",
		FEN:               "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		DepthLevelResults: []uint64{1, 14, 191, 2812, 43238, 674624},
	},
	{
		Name:              "pos4",
		FEN:               "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		DepthLevelResults: []uint64{1, 6, 264, 9467, 422333},
	},
	{
		Name:              "pos4mirror",
		FEN:               "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		DepthLevelResults: []uint64{1, 6, 264, 9467, 422333},
	},
	{
		Name:              "pos5",
		FEN:               "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		DepthLevelResults: []uint64{1, 44, 1486, 62379},
	},
}
