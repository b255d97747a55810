// Package config holds the demo binary's configuration. Values come from
// flags or from MINIMAX-prefixed environment variables.
package config

import (
	"time"

	"github.com/namsral/flag"
)

type Config struct {
	PlayerOnePiece string
	PlayerOne      string
	PlayerTwo      string
	Pace           time.Duration
	Seed           uint64
	Debug          bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("minimax", "MINIMAX", flag.ContinueOnError)
	fs.StringVar(&c.PlayerOnePiece, "piece", "X", "piece player one marks with (X or O)")
	fs.StringVar(&c.PlayerOne, "player-one", "random", "strategy for player one (random, greedy, safe)")
	fs.StringVar(&c.PlayerTwo, "player-two", "random", "strategy for player two (random, greedy, safe)")
	fs.DurationVar(&c.Pace, "pace", time.Second, "delay between plies")
	fs.Uint64Var(&c.Seed, "seed", 0, "seed for random strategies; 0 leaves them unseeded")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	return fs.Parse(args)
}
