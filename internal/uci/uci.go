// Package uci implements the text command loop spec.md's PURPOSE section
// names as the engine's front end, grounded on
// _examples/original_source/src/uci.rs's command state machine and
// reimplemented over this module's value-typed Position/Move API instead of
// a UCI parsing library.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chess "github.com/ravensworth/chesscore"
)

const defaultSearchDepth = 4

// Controller holds the state a UCI session accumulates between commands:
// the debug flag and the position last set by a "position" command.
type Controller struct {
	debug bool
	pos   chess.Position
	set   bool

	out io.Writer
	log func(format string, args ...any)
}

// NewController returns a Controller that writes engine responses to out.
func NewController(out io.Writer) *Controller {
	return &Controller{
		pos: chess.StartingPosition(),
		out: out,
		log: func(string, ...any) {},
	}
}

// SetLogger installs a sink for diagnostic lines the teacher's uci.rs writes
// to stderr via eprintln! (board dumps, received-command echoes). The
// default logger discards these.
func (c *Controller) SetLogger(log func(format string, args ...any)) {
	c.log = log
}

// Run reads UCI commands from in, one per line, until in is exhausted or a
// "quit" command is read.
func (c *Controller) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.log("received: %s", line)
		if !c.dispatch(line) {
			return nil
		}
	}
	return scanner.Err()
}

// dispatch handles a single command line, returning false for "quit".
func (c *Controller) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		fmt.Fprintln(c.out, "id name chesscore")
		fmt.Fprintln(c.out, "id author ravensworth")
		fmt.Fprintln(c.out, "uciok")
	case "debug":
		c.debug = len(args) > 0 && args[0] == "on"
	case "isready":
		fmt.Fprintln(c.out, "readyok")
	case "ucinewgame":
		c.pos = chess.StartingPosition()
		c.set = true
	case "position":
		c.handlePosition(args)
	case "go":
		c.handleGo(args)
	case "quit":
		return false
	}
	return true
}

func (c *Controller) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var pos chess.Position
	rest := args
	switch args[0] {
	case "startpos":
		pos = chess.StartingPosition()
		rest = args[1:]
	case "fen":
		rest = args[1:]
		end := len(rest)
		for i, a := range rest {
			if a == "moves" {
				end = i
				break
			}
		}
		fen := strings.Join(rest[:end], " ")
		parsed, err := chess.ParsePosition(fen)
		if err != nil {
			c.log("invalid fen %q: %s", fen, err)
			return
		}
		pos = parsed
		rest = rest[end:]
	default:
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveText := range rest[1:] {
			m, ok := findMove(pos, moveText)
			if !ok {
				c.log("illegal move in position command: %s", moveText)
				return
			}
			pos = pos.Apply(m)
		}
	}

	c.pos = pos
	c.set = true
	if c.debug {
		c.log("position set:\n%s", c.pos.String())
	}
}

// findMove resolves a UCI long-algebraic move (e.g. "e2e4", "e7e8q")
// against pos's legal moves.
func findMove(pos chess.Position, text string) (chess.Move, bool) {
	for _, m := range pos.LegalMoves() {
		if m.String() == text {
			return m, true
		}
	}
	return chess.Move(0), false
}

func (c *Controller) handleGo(args []string) {
	if !c.set {
		c.pos = chess.StartingPosition()
		c.set = true
	}

	depth := defaultSearchDepth
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}

	m, _, ok := c.pos.BestMove(depth)
	if !ok {
		fmt.Fprintln(c.out, "bestmove 0000")
		return
	}
	fmt.Fprintf(c.out, "bestmove %s\n", m)
}
