package chess

import "fmt"

// Outcome is the result of a game.
type Outcome string

const (
	NoOutcome Outcome = "*"
	WhiteWon  Outcome = "1-0"
	BlackWon  Outcome = "0-1"
	Draw      Outcome = "1/2-1/2"
)

func (o Outcome) String() string { return string(o) }

// Method is how a game's outcome was reached.
type Method uint8

const (
	NoMethod Method = iota
	MethodCheckmate
	MethodResignation
	MethodStalemate
	MethodThreefoldRepetition
	MethodFiftyMoveRule
	MethodInsufficientMaterial
)

func (m Method) String() string {
	switch m {
	case MethodCheckmate:
		return "checkmate"
	case MethodResignation:
		return "resignation"
	case MethodStalemate:
		return "stalemate"
	case MethodThreefoldRepetition:
		return "threefold repetition"
	case MethodFiftyMoveRule:
		return "fifty-move rule"
	case MethodInsufficientMaterial:
		return "insufficient material"
	}
	return "none"
}

// TagPair is a PGN header key/value pair.
type TagPair struct {
	Key   string
	Value string
}

// Game tracks a sequence of positions and the moves that produced them, the
// "external GUI" surface spec.md's PURPOSE section gestures at, adapted from
// the teacher's pointer-heavy Game onto this repo's value-typed Position and
// Move.
type Game struct {
	tagPairs  []TagPair
	moves     []Move
	positions []Position
	outcome   Outcome
	method    Method
}

// NewGame returns a game starting from the standard opening position.
func NewGame() *Game {
	return &Game{
		positions: []Position{StartingPosition()},
		outcome:   NoOutcome,
	}
}

// NewGameFromFEN starts a game from an arbitrary FEN position; prior move
// history is necessarily empty.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParsePosition(fen)
	if err != nil {
		return nil, err
	}
	return &Game{positions: []Position{pos}, outcome: NoOutcome}, nil
}

// Position returns the game's current position.
func (g *Game) Position() Position {
	return g.positions[len(g.positions)-1]
}

// Moves returns the moves played so far.
func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

// AddTagPair records a PGN header field.
func (g *Game) AddTagPair(key, value string) {
	for i, tp := range g.tagPairs {
		if tp.Key == key {
			g.tagPairs[i].Value = value
			return
		}
	}
	g.tagPairs = append(g.tagPairs, TagPair{key, value})
}

// Move plays m, which must be legal in the game's current position, and
// records the resulting position and any automatic draw/checkmate outcome.
func (g *Game) Move(m Move) error {
	pos := g.Position()
	legal := false
	for _, lm := range pos.LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("chess: illegal move %s in position %s", m, pos.FEN())
	}

	next := pos.Apply(m)
	g.moves = append(g.moves, m)
	g.positions = append(g.positions, next)
	g.updateOutcome()
	return nil
}

// MoveSAN decodes s as SAN in the current position and plays it.
func (g *Game) MoveSAN(s string) error {
	pos := g.Position()
	m, ok := pos.DecodeSAN(s)
	if !ok {
		return fmt.Errorf("chess: could not decode SAN move %q in position %s", s, pos.FEN())
	}
	return g.Move(m)
}

// Outcome returns the game's outcome, or NoOutcome if still in progress.
func (g *Game) Outcome() Outcome { return g.outcome }

// Method returns how the game's outcome was reached, or NoMethod if the
// game is still in progress.
func (g *Game) Method() Method { return g.method }

// Resign ends the game with c resigning.
func (g *Game) Resign(c Color) {
	if g.outcome != NoOutcome {
		return
	}
	g.method = MethodResignation
	if c == White {
		g.outcome = BlackWon
	} else {
		g.outcome = WhiteWon
	}
}

func (g *Game) updateOutcome() {
	pos := g.Position()
	switch pos.Status() {
	case Checkmate:
		g.method = MethodCheckmate
		if pos.SideToMove() == White {
			g.outcome = BlackWon
		} else {
			g.outcome = WhiteWon
		}
		return
	case Stalemate:
		g.outcome = Draw
		g.method = MethodStalemate
		return
	}
	if pos.HalfmoveClock() >= 100 {
		g.outcome = Draw
		g.method = MethodFiftyMoveRule
		return
	}
	if g.repetitionCount(pos) >= 3 {
		g.outcome = Draw
		g.method = MethodThreefoldRepetition
		return
	}
	if !pos.HasSufficientMaterial() {
		g.outcome = Draw
		g.method = MethodInsufficientMaterial
	}
}

// repetitionCount counts how many times pos (by board/side/castling/en
// passant identity) has occurred in the game so far, supporting the
// threefold-repetition draw original_source's engine does not implement but
// a complete game-recording layer naturally wants.
func (g *Game) repetitionCount(pos Position) int {
	n := 0
	for _, p := range g.positions {
		if p.Equal(pos) {
			n++
		}
	}
	return n
}
