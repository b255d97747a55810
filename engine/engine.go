// Package engine drives a single game to completion: one rules-engine
// state, one strategy per side, no sharing across games. The loop is fully
// synchronous; the only suspension is the optional pacing delay for
// human-watchable demos.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"minimax/game"
)

// MaxPlies guards against a strategy/rules pairing that never reaches a
// terminal state. A correct pairing never gets near it.
const MaxPlies = 512

// Status tracks the driver's progress through one game. InProgress is the
// initial status; the other two are terminal.
type Status uint8

const (
	InProgress Status = iota
	WonBy
	Drawn
)

func (s Status) String() string {
	switch s {
	case WonBy:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

// Option configures an Engine.
type Option[S game.State[S, M], M comparable] func(*Engine[S, M])

// WithPace sleeps for pace between plies, for human-watchable output.
func WithPace[S game.State[S, M], M comparable](pace time.Duration) Option[S, M] {
	return func(e *Engine[S, M]) {
		if pace > 0 {
			e.pace = pace
		}
	}
}

// WithOutput renders the state to w before every ply and writes a closing
// line announcing the outcome. The state must implement fmt.Stringer for
// the board renders to appear.
func WithOutput[S game.State[S, M], M comparable](w io.Writer) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.out = w
	}
}

// Engine runs the game loop over one owned state.
type Engine[S game.State[S, M], M comparable] struct {
	state      S
	strategies [2]game.Strategy[S, M]
	status     Status
	winner     game.Player
	pace       time.Duration
	out        io.Writer
}

// New returns an engine that plays out state with one choosing player one's
// moves and two player two's.
func New[S game.State[S, M], M comparable](state S, one, two game.Strategy[S, M], options ...Option[S, M]) *Engine[S, M] {
	if one == nil || two == nil {
		panic("engine needs a strategy for both players")
	}
	e := &Engine[S, M]{
		state:      state,
		strategies: [2]game.Strategy[S, M]{one, two},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to its terminal result and returns it along with
// per-ply metrics.
//
// A strategy returning no move while the game is undetermined violates the
// Strategy contract: under a correct rules engine the two cannot disagree,
// so Run panics rather than loop or guess.
func (e *Engine[S, M]) Run() (game.GameResult, []MoveMetric) {
	log.Info().Msgf("%s is starting", e.state.CurrentPlayer())

	var metrics []MoveMetric
	for ply := 1; ; ply++ {
		e.render()

		if result := e.state.GameResult(); result.IsDetermined() {
			e.finish(result)
			return result, metrics
		}
		if ply > MaxPlies {
			panic(fmt.Sprintf("game still undetermined after %d plies", MaxPlies))
		}

		mover := e.state.CurrentPlayer()
		start := time.Now()
		mv, ok := e.strategies[mover].ChooseMove(e.state)
		if !ok {
			panic(fmt.Sprintf("%s's strategy returned no move on an undetermined state", mover))
		}
		e.state.ApplyMove(mv)
		metrics = append(metrics, MoveMetric{
			Ply:      ply,
			Player:   mover,
			Duration: time.Since(start),
		})
		log.Debug().Msgf("ply %d: %s played %v", ply, mover, mv)

		if e.pace > 0 {
			time.Sleep(e.pace)
		}
	}
}

// Status reports where the driver is in its lifecycle.
func (e *Engine[S, M]) Status() Status {
	return e.status
}

// Winner returns the winning player once the game is won.
func (e *Engine[S, M]) Winner() (game.Player, bool) {
	return e.winner, e.status == WonBy
}

// State exposes the driven state, e.g. for inspecting the final position.
func (e *Engine[S, M]) State() S {
	return e.state
}

func (e *Engine[S, M]) render() {
	if e.out == nil {
		return
	}
	if s, ok := any(e.state).(fmt.Stringer); ok {
		fmt.Fprintln(e.out, s)
	}
}

func (e *Engine[S, M]) finish(result game.GameResult) {
	if winner, ok := result.Winner(); ok {
		e.status, e.winner = WonBy, winner
		log.Info().Msgf("%s wins", winner)
		if e.out != nil {
			fmt.Fprintf(e.out, "%s wins!\n", winner)
		}
		return
	}
	e.status = Drawn
	log.Info().Msg("game ended in a draw")
	if e.out != nil {
		fmt.Fprintln(e.out, "Game ended in a draw.")
	}
}
