package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"minimax/config"
	"minimax/engine"
	"minimax/game"
	"minimax/searcher"
	"minimax/tictactoe"
)

type strategy = game.Strategy[*tictactoe.BoardState, tictactoe.Move]

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	piece := tictactoe.X
	if cfg.PlayerOnePiece == "O" {
		piece = tictactoe.O
	}

	seedTwo := cfg.Seed
	if seedTwo != 0 {
		seedTwo++ // distinct streams for the two sides
	}
	e := engine.New(
		tictactoe.NewWithPiece(piece),
		newStrategy(cfg.PlayerOne, cfg.Seed),
		newStrategy(cfg.PlayerTwo, seedTwo),
		engine.WithOutput[*tictactoe.BoardState, tictactoe.Move](os.Stdout),
		engine.WithPace[*tictactoe.BoardState, tictactoe.Move](cfg.Pace),
	)
	result, metrics := e.Run()
	log.Info().Msgf("game over in %d plies (%s thinking): %s",
		len(metrics), engine.TotalDuration(metrics), result)
}

func newStrategy(name string, seed uint64) strategy {
	switch name {
	case "random":
		if seed != 0 {
			src := rand.New(rand.NewSource(seed))
			return searcher.NewRandom(searcher.WithSource[*tictactoe.BoardState, tictactoe.Move](src))
		}
		return searcher.NewRandom[*tictactoe.BoardState, tictactoe.Move]()
	case "greedy":
		return searcher.NewGreedy[*tictactoe.BoardState, tictactoe.Move, float64](tictactoe.OpenLinesAfter{})
	case "safe":
		return searcher.NewSafe[*tictactoe.BoardState, tictactoe.Move]()
	default:
		log.Fatal().Msgf("unknown strategy %q", name)
		return nil
	}
}
