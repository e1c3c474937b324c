package searcher

import (
	"tictactoe/game"
)

// ChooseMove searches a fresh tree for state and plays the chosen move. Nothing
// survives between calls apart from the random source passed in options.
func ChooseMove(state game.Board, iterations int, options ...Option) (game.Move, game.Mark, game.Board, error) {
	return NewMCTS(options...).ChooseMove(state, iterations)
}

func (m *MCTS) ChooseMove(state game.Board, iterations int) (game.Move, game.Mark, game.Board, error) {
	root := NewNode(state)
	move, err := m.Search(root, iterations)
	if err != nil {
		return game.Move{}, game.Empty, state, err
	}

	player := state.NextToMove()
	next, err := state.Apply(move, player)
	if err != nil {
		return game.Move{}, game.Empty, state, err
	}
	return move, player, next, nil
}
