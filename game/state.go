package game

import "github.com/samber/lo"

// State is the capability set every rules engine must provide. S is the
// concrete state type (typically a pointer type) and M its move type. Any
// other necessary information belongs in the state too, e.g. a chess state
// wants enough history to detect threefold repetition.
type State[S any, M comparable] interface {
	// LegalMoves returns every currently permitted move, in an order that is
	// deterministic for a given state. Empty iff the state is terminal.
	LegalMoves() []M

	// ApplyMove advances the state in place. mv must be legal: passing an
	// illegal move is a contract violation, not a recoverable error. Callers
	// that have not already validated mv should use the rules engine's
	// checked entry point instead.
	ApplyMove(mv M)

	// NextState returns the state reached by mv without touching the
	// receiver. Equivalent to copying the state and calling ApplyMove.
	NextState(mv M) S

	// GameResult reports the current outcome, computed purely from the
	// state. Repeated calls return identical results.
	GameResult() GameResult

	// CurrentPlayer returns the side to move.
	CurrentPlayer() Player
}

// Successor pairs a reachable state with the move that produces it.
type Successor[S any, M comparable] struct {
	State S
	Move  M
}

// ReachableStates returns every state one legal move away from s.
func ReachableStates[S State[S, M], M comparable](s S) []S {
	return lo.Map(s.LegalMoves(), func(mv M, _ int) S {
		return s.NextState(mv)
	})
}

// Successors returns every reachable state together with the move that
// produces it, in LegalMoves order.
func Successors[S State[S, M], M comparable](s S) []Successor[S, M] {
	return lo.Map(s.LegalMoves(), func(mv M, _ int) Successor[S, M] {
		return Successor[S, M]{State: s.NextState(mv), Move: mv}
	})
}

// Strategy picks a legal move for the side to move, or reports that no move
// is available. A strategy may look ahead by recursing over Successors, but
// must bound its recursion; for board games the shrinking set of open cells
// is the natural bound. Implementations bind any evaluator they consult at
// construction time, so the caller never sees its evaluation type.
type Strategy[S State[S, M], M comparable] interface {
	ChooseMove(s S) (M, bool)
}
