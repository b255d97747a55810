package engine

import (
	"time"

	"minimax/game"
)

// MoveMetric records one ply of a finished game.
type MoveMetric struct {
	Ply      int
	Player   game.Player
	Duration time.Duration
}

// TotalDuration sums the time the strategies spent choosing moves. Pacing
// delays are excluded.
func TotalDuration(metrics []MoveMetric) time.Duration {
	var total time.Duration
	for _, m := range metrics {
		total += m.Duration
	}
	return total
}
