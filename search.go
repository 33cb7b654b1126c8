package chess

import "math"

// Search score bounds, grounded on original_source/src/search.rs's
// INF/NEGINF (i32::MAX / i32::MIN+1): kept symmetric around zero so negating
// one never overflows.
const (
	scoreInf    = math.MaxInt32
	scoreNegInf = -math.MaxInt32

	// mateDepthPenalty biases faster mates to score better than slower
	// ones, matching search.rs's "50 - depth".
	mateDepthPenalty = 50
)

// BestMove runs a fixed-depth minimax search with fail-hard alpha-beta
// pruning (spec.md §4.7), grounded on original_source/src/search.rs: White
// maximizes, Black minimizes, and pseudo-legal moves that leave the mover in
// check are discarded during the search rather than filtered up front. It
// returns the best move found, its score from White's perspective, and
// false if the position has no legal move. A depth of 0 searches no move
// and always reports false.
func (pos *Position) BestMove(depth int) (Move, int, bool) {
	score, move, ok := pos.minimax(depth, scoreNegInf, scoreInf)
	return move, score, ok
}

func (pos *Position) minimax(depth int, alpha, beta int) (int, Move, bool) {
	if depth == 0 {
		return pos.Evaluate(), Move(0), false
	}

	white := pos.SideToMove() == White

	var pseudo MoveList
	pos.GeneratePseudoLegal(&pseudo)

	var best Move
	haveBest := false
	bestScore := 0

	for _, m := range pseudo.Slice() {
		next := pos.Apply(m)
		if next.IsInCheck(pos.SideToMove()) {
			continue
		}

		score, _, _ := next.minimax(depth-1, alpha, beta)

		if white {
			if score >= beta {
				return beta, Move(0), false
			}
			if !haveBest || score > bestScore {
				alpha = score
				bestScore = score
				best = m
				haveBest = true
			}
		} else {
			if score <= alpha {
				return alpha, Move(0), false
			}
			if !haveBest || score < bestScore {
				beta = score
				bestScore = score
				best = m
				haveBest = true
			}
		}
	}

	if haveBest {
		return bestScore, best, true
	}

	if pos.IsInCheck(pos.SideToMove()) {
		penalty := mateDepthPenalty - depth
		if white {
			return scoreNegInf + penalty, Move(0), false
		}
		return scoreInf - penalty, Move(0), false
	}
	return 0, Move(0), false
}
