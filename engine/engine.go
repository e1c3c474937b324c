package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// A game cannot last longer than the number of cells
const MaxMoves = game.Size * game.Size

type Engine interface {
	// Run plays the game till it is over
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
