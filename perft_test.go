package chess

import "testing"

func TestPerftFixtures(t *testing.T) {
	const maxDepth = 3
	for _, cfg := range PerftConfigs {
		cfg := cfg
		t.Run(cfg.Name, func(t *testing.T) {
			pos, err := ParsePosition(cfg.FEN)
			if err != nil {
				t.Fatalf("ParsePosition(%q): %s", cfg.FEN, err)
			}
			for depth, want := range cfg.DepthLevelResults {
				if depth > maxDepth {
					break
				}
				if got := pos.Perft(depth); got != want {
					t.Fatalf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestParallelPerftMatchesPerft(t *testing.T) {
	pos := StartingPosition()
	const depth = 3
	want := pos.Perft(depth)
	if got := pos.ParallelPerft(depth); got != want {
		t.Fatalf("ParallelPerft(%d) = %d, want %d (sequential)", depth, got, want)
	}
}

func TestPerftDepthZeroIsOne(t *testing.T) {
	pos := StartingPosition()
	if got := pos.Perft(0); got != 1 {
		t.Fatalf("Perft(0) = %d, want 1", got)
	}
}
