// Package searcher holds the move-selection strategies. Every strategy
// works against the game package's contracts only, so a different rules
// engine or evaluator drops in without touching this package.
package searcher

import (
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"minimax/game"
)

// Random selects uniformly among the legal moves. It consults no evaluator.
type Random[S game.State[S, M], M comparable] struct {
	intn func(n int) int
}

// Option configures a Random strategy.
type Option[S game.State[S, M], M comparable] func(*Random[S, M])

// WithSource draws moves from src instead of the default generator, making
// selection reproducible for a given seed.
func WithSource[S game.State[S, M], M comparable](src *rand.Rand) Option[S, M] {
	return func(r *Random[S, M]) {
		if src != nil {
			r.intn = src.Intn
		}
	}
}

// NewRandom returns a uniform-random strategy. Without options it draws from
// a fast system-seeded generator.
func NewRandom[S game.State[S, M], M comparable](options ...Option[S, M]) *Random[S, M] {
	r := &Random[S, M]{}
	for _, option := range options {
		option(r)
	}
	return r
}

// ChooseMove picks one legal move uniformly at random. Reports no move iff
// the state has none.
func (r *Random[S, M]) ChooseMove(s S) (M, bool) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		var zero M
		return zero, false
	}
	intn := r.intn
	if intn == nil { // zero value: fall back to the default generator
		intn = frand.Intn
	}
	return moves[intn(len(moves))], true
}
