package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type mctsAgent struct {
	mcts       *searcher.MCTS
	iterations int
}

// NewMCTS returns an agent that searches a fresh tree of the given number of
// iterations for every move.
func NewMCTS(iterations int, options ...searcher.Option) Agent {
	return &mctsAgent{
		mcts:       searcher.NewMCTS(options...),
		iterations: iterations,
	}
}

func (a *mctsAgent) FindMove(state game.Board) (game.Move, metrics.SearchMetric, error) {
	move, _, _, err := a.mcts.ChooseMove(state, a.iterations)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return move, a.mcts.Metrics(), nil
}
