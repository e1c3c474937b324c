package session

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/utils"
)

// humanAgent reads moves from the session input until it gets a legal one.
type humanAgent struct {
	session *Session
}

func (h *humanAgent) FindMove(state game.Board) (game.Move, metrics.SearchMetric, error) {
	h.session.println("It is your move.")
	for {
		input, err := h.session.ask("Human, please choose a space! Enter two numbers separated by a comma: ")
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}

		move, err := game.ParseMove(input)
		if err != nil {
			h.session.println("You did not input a valid move.")
			continue
		}

		if utils.FindIndex(state.LegalMoves(), move) < 0 {
			h.session.println("That move has already been played. Pick another move.")
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
