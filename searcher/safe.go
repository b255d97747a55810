package searcher

import "minimax/game"

// Safe is a two-ply look-ahead strategy. It takes an immediate winning move
// when one exists; failing that, it refuses any move that offers the
// opponent an immediate winning reply, as long as an alternative remains.
// Among equally acceptable moves the first enumerated wins, so selection is
// deterministic. Look-ahead depth is fixed at two plies, which is also its
// termination bound.
type Safe[S game.State[S, M], M comparable] struct {
	evaluator game.TerminalEvaluator[S, M]
}

// NewSafe returns a Safe strategy.
func NewSafe[S game.State[S, M], M comparable]() *Safe[S, M] {
	return &Safe[S, M]{}
}

// ChooseMove reports no move iff the state is terminal.
func (st *Safe[S, M]) ChooseMove(s S) (M, bool) {
	var zero M
	if s.GameResult().IsDetermined() {
		return zero, false
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return zero, false
	}

	// An immediate win beats every other consideration.
	winFor := s.CurrentPlayer().Result()
	for _, mv := range moves {
		if st.evaluator.Evaluate(s, mv) == winFor {
			return mv, true
		}
	}

	for _, mv := range moves {
		if !st.opponentWinsOnTheSpot(s.NextState(mv)) {
			return mv, true
		}
	}

	// Every move loses; concede with the first.
	return moves[0], true
}

// opponentWinsOnTheSpot reports whether the side to move at s has an
// immediate winning move.
func (st *Safe[S, M]) opponentWinsOnTheSpot(s S) bool {
	winFor := s.CurrentPlayer().Result()
	for _, mv := range s.LegalMoves() {
		if st.evaluator.Evaluate(s, mv) == winFor {
			return true
		}
	}
	return false
}
