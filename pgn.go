package chess

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// EncodePGN renders g as a PGN game record, grounded on the teacher's
// encodePGN, using SAN move text throughout.
func EncodePGN(g *Game) string {
	var sb strings.Builder
	for _, tp := range g.tagPairs {
		fmt.Fprintf(&sb, "[%s %q]\n", tp.Key, tp.Value)
	}
	sb.WriteString("\n")
	pos := StartingPosition()
	if len(g.positions) > 0 {
		pos = g.positions[0]
	}
	for i, m := range g.moves {
		txt := pos.EncodeSAN(m)
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s ", i/2+1, txt)
		} else {
			fmt.Fprintf(&sb, "%s ", txt)
		}
		pos = pos.Apply(m)
	}
	sb.WriteString(string(g.outcome))
	return sb.String()
}

var tagPairRegex = regexp.MustCompile(`\[(\S+)\s"([^"]*)"\]`)

func parseTagPairs(pgn string) []TagPair {
	var pairs []TagPair
	for _, m := range tagPairRegex.FindAllStringSubmatch(pgn, -1) {
		pairs = append(pairs, TagPair{Key: m[1], Value: m[2]})
	}
	return pairs
}

var moveListTokenRe = regexp.MustCompile(`(?:\d+\.)|(O-O(?:-O)?|[a-hKQRBNx1-8]*[a-h][1-8](?:=[QRBN])?[+#]?)|(?:\{([^}]*)\})|(\*|0-1|1-0|1/2-1/2)`)

func moveTextTokens(pgn string) ([]string, Outcome) {
	var lines []string
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") {
			lines = append(lines, line)
		}
	}
	body := strings.Join(lines, "\n")

	var moves []string
	outcome := NoOutcome
	for _, match := range moveListTokenRe.FindAllStringSubmatch(body, -1) {
		move, _, outcomeText := match[1], match[2], match[3]
		if outcomeText != "" {
			outcome = Outcome(outcomeText)
			break
		}
		if move != "" {
			moves = append(moves, move)
		}
	}
	return moves, outcome
}

// DecodePGN parses a single PGN game record, grounded on the teacher's
// decodePGN: an optional "FEN" tag seeds the starting position, then every
// movetext token is decoded as SAN and replayed.
func DecodePGN(pgn string) (*Game, error) {
	tagPairs := parseTagPairs(pgn)

	var g *Game
	for _, tp := range tagPairs {
		if strings.EqualFold(tp.Key, "FEN") {
			var err error
			g, err = NewGameFromFEN(tp.Value)
			if err != nil {
				return nil, fmt.Errorf("chess: pgn FEN tag: %w", err)
			}
			break
		}
	}
	if g == nil {
		g = NewGame()
	}
	for _, tp := range tagPairs {
		g.AddTagPair(tp.Key, tp.Value)
	}

	moves, outcome := moveTextTokens(pgn)
	for i, moveStr := range moves {
		if err := g.MoveSAN(moveStr); err != nil {
			return nil, fmt.Errorf("chess: pgn decode error at move %d: %w", i+1, err)
		}
	}
	g.outcome = outcome
	return g, nil
}

// Scanner reads concatenated PGN game records from a stream, one Scan per
// game, grounded on the teacher's Scanner/ParallelScanner state machine
// (notInPGN/inTagPairs/inMoves line classification).
type Scanner struct {
	scanr *bufio.Scanner
	game  *Game
	err   error
}

// NewScanner returns a Scanner reading PGN games from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanr: bufio.NewScanner(r)}
}

type pgnScanState int

const (
	notInPGN pgnScanState = iota
	inTagPairs
	inMoves
)

// Scan reads the next game, returning false at EOF or on a parse error; call
// Err to distinguish the two.
func (s *Scanner) Scan() bool {
	if s.err == io.EOF {
		return false
	}
	s.err = nil
	var sb strings.Builder
	state := notInPGN
	finish := func() bool {
		game, err := DecodePGN(sb.String())
		if err != nil {
			s.err = err
			return false
		}
		s.game = game
		return true
	}
	for {
		if !s.scanr.Scan() {
			s.err = s.scanr.Err()
			if s.err == nil {
				s.err = io.EOF
			}
			if sb.Len() == 0 {
				return false
			}
			return finish()
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
				return finish()
			}
			sb.WriteString(line + "\n")
		}
	}
}

// Next returns the game decoded by the most recent successful Scan.
func (s *Scanner) Next() *Game { return s.game }

// Err returns the error (if any, including io.EOF) from the most recent Scan.
func (s *Scanner) Err() error { return s.err }
