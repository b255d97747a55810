package game

// Evaluator scores a position from the perspective of the side to move. The
// evaluation type V is whatever the paired strategy needs: a unit value, a
// GameResult, a scalar Q-value, a Distribution, or a Policy.
type Evaluator[S any, V any] interface {
	Evaluate(s S) V
}

// MoveEvaluator scores a candidate move for a position, again from the
// perspective of the side to move.
type MoveEvaluator[S any, M comparable, V any] interface {
	Evaluate(s S, mv M) V
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc[S any, V any] func(S) V

func (f EvaluatorFunc[S, V]) Evaluate(s S) V {
	return f(s)
}

// MoveEvaluatorFunc adapts a plain function to MoveEvaluator.
type MoveEvaluatorFunc[S any, M comparable, V any] func(S, M) V

func (f MoveEvaluatorFunc[S, M, V]) Evaluate(s S, mv M) V {
	return f(s, mv)
}

// EmptyEvaluator is for strategies that need no guidance, e.g. uniform
// random play.
type EmptyEvaluator[S any] struct{}

func (EmptyEvaluator[S]) Evaluate(S) struct{} {
	return struct{}{}
}

// TerminalEvaluator reports the result of the state a candidate move leads
// to. Strategies that only care whether a move ends the game on the spot
// need nothing more.
type TerminalEvaluator[S State[S, M], M comparable] struct{}

func (TerminalEvaluator[S, M]) Evaluate(s S, mv M) GameResult {
	return s.NextState(mv).GameResult()
}

// MoveProb is one entry of a Policy.
type MoveProb[M comparable] struct {
	Move M
	Prob float64
}

// Policy is a probability distribution over the legal moves of a state, in
// LegalMoves order. Probabilities sum to 1.
type Policy[M comparable] []MoveProb[M]
