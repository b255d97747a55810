package searcher

import (
	"cmp"

	"github.com/samber/lo"

	"minimax/game"
)

// Greedy picks the move whose evaluation is maximal under V's total order,
// one ply deep. Ties go to the move enumerated first.
type Greedy[S game.State[S, M], M comparable, V cmp.Ordered] struct {
	evaluator game.MoveEvaluator[S, M, V]
}

// NewGreedy returns a greedy strategy driven by evaluator.
func NewGreedy[S game.State[S, M], M comparable, V cmp.Ordered](evaluator game.MoveEvaluator[S, M, V]) *Greedy[S, M, V] {
	if evaluator == nil {
		panic("greedy strategy needs an evaluator")
	}
	return &Greedy[S, M, V]{evaluator: evaluator}
}

// ChooseMove evaluates every legal move and returns the best. Reports no
// move iff the state has none.
func (g *Greedy[S, M, V]) ChooseMove(s S) (M, bool) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		var zero M
		return zero, false
	}

	type scored struct {
		mv  M
		val V
	}
	evaluated := lo.Map(moves, func(mv M, _ int) scored {
		return scored{mv: mv, val: g.evaluator.Evaluate(s, mv)}
	})
	// Strict greater keeps the earliest of equals.
	best := lo.MaxBy(evaluated, func(a, b scored) bool {
		return a.val > b.val
	})
	return best.mv, true
}
