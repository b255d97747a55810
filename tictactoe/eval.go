package tictactoe

import (
	"github.com/samber/lo"

	"minimax/game"
)

// OpenLines scores a position as the number of winning lines still open to
// the side to move minus the number open to the opponent, scaled to
// [-1, 1]. A line is open to a player while the opponent holds none of its
// cells.
type OpenLines struct{}

var _ game.Evaluator[*BoardState, float64] = OpenLines{}

func (OpenLines) Evaluate(b *BoardState) float64 {
	mine := b.positions(b.CurrentPlayer())
	theirs := b.positions(b.LastPlayer())

	var openToMe, openToThem float64
	for _, line := range winningLines {
		if theirs&line == 0 {
			openToMe++
		}
		if mine&line == 0 {
			openToThem++
		}
	}
	return (openToMe - openToThem) / float64(len(winningLines))
}

// OpenLinesAfter scores the position a candidate move leads to, from the
// mover's perspective. The child state is scored for the opponent, so the
// sign flips.
type OpenLinesAfter struct{}

var _ game.MoveEvaluator[*BoardState, Move, float64] = OpenLinesAfter{}

func (OpenLinesAfter) Evaluate(b *BoardState, mv Move) float64 {
	return -OpenLines{}.Evaluate(b.NextState(mv))
}

// UniformPolicy spreads probability evenly over the legal moves. Nil on a
// terminal state.
type UniformPolicy struct{}

var _ game.Evaluator[*BoardState, game.Policy[Move]] = UniformPolicy{}

func (UniformPolicy) Evaluate(b *BoardState) game.Policy[Move] {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	prob := 1 / float64(len(moves))
	return lo.Map(moves, func(mv Move, _ int) game.MoveProb[Move] {
		return game.MoveProb[Move]{Move: mv, Prob: prob}
	})
}
