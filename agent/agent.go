package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Agent interface {
	// FindMove returns a move for the player to move in state, with search
	// metrics when the agent collects them.
	FindMove(state game.Board) (game.Move, metrics.SearchMetric, error)
}
