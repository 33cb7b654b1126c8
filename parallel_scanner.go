package chess

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"
	"sync"
)

// ParallelScanner decodes a stream of concatenated PGN game records
// concurrently: one goroutine splits the stream into game-sized chunks of
// text, a pool of workers decodes each chunk, grounded on the teacher's
// ParallelScanner/parseGameWorker split-then-fan-out shape.
type ParallelScanner struct {
	scanr *bufio.Scanner
	err   error
}

// NewParallelScanner returns a new scanner that decodes PGN games in
// parallel from r.
func NewParallelScanner(r io.Reader) *ParallelScanner {
	return &ParallelScanner{scanr: bufio.NewScanner(r)}
}

// Begin splits r into game records and decodes them across runtime.NumCPU()
// workers, sending each successfully decoded game to output before closing
// it. It returns when the input is exhausted, ctx is done, or the scanner
// hits a read error; check Err afterward for anything other than io.EOF.
func (s *ParallelScanner) Begin(ctx context.Context, output chan *Game) error {
	if s.err == io.EOF {
		return s.err
	}
	s.err = nil

	work := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go decodeGameWorker(work, output, &wg)
	}

	var sb strings.Builder
	state := notInPGN
OUTER:
	for {
		select {
		case <-ctx.Done():
			break OUTER
		default:
		}
		if !s.scanr.Scan() {
			s.err = s.scanr.Err()
			if s.err == nil {
				s.err = io.EOF
			}
			break OUTER
		}
		line := strings.TrimSpace(s.scanr.Text())
		isTagPair := strings.HasPrefix(line, "[")
		isMoveSeq := strings.HasPrefix(line, "1.")
		switch state {
		case notInPGN:
			if !isTagPair {
				continue
			}
			state = inTagPairs
			sb.WriteString(line + "\n")
		case inTagPairs:
			if isMoveSeq {
				state = inMoves
			}
			sb.WriteString(line + "\n")
		case inMoves:
			if line == "" {
				work <- sb.String()
				sb.Reset()
				state = notInPGN
				continue
			}
			sb.WriteString(line + "\n")
		}
	}
	if sb.Len() > 0 {
		work <- sb.String()
	}
	close(work)
	wg.Wait()
	close(output)
	return ctx.Err()
}

// Err returns the error (if any, including io.EOF) encountered while
// scanning.
func (s *ParallelScanner) Err() error {
	return s.err
}

func decodeGameWorker(work <-chan string, out chan<- *Game, wg *sync.WaitGroup) {
	defer wg.Done()
	for chunk := range work {
		game, err := DecodePGN(chunk)
		if err != nil {
			continue
		}
		out <- game
	}
}
