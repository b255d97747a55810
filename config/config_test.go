package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Load(nil))

		require.Equal(t, "X", cfg.PlayerOnePiece)
		require.Equal(t, "random", cfg.PlayerOne)
		require.Equal(t, "random", cfg.PlayerTwo)
		require.Equal(t, time.Second, cfg.Pace)
		require.Equal(t, uint64(0), cfg.Seed)
		require.False(t, cfg.Debug)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Load([]string{
			"-piece", "O",
			"-player-one", "safe",
			"-player-two", "greedy",
			"-pace", "0s",
			"-seed", "42",
			"-debug",
		}))

		require.Equal(t, "O", cfg.PlayerOnePiece)
		require.Equal(t, "safe", cfg.PlayerOne)
		require.Equal(t, "greedy", cfg.PlayerTwo)
		require.Equal(t, time.Duration(0), cfg.Pace)
		require.Equal(t, uint64(42), cfg.Seed)
		require.True(t, cfg.Debug)
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, cfg.Load([]string{"-bogus"}))
	})
}
