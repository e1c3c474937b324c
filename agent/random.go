package agent

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var ErrNoMoves = errors.New("no legal moves")

type randomAgent struct {
	rand *rand.Rand
}

// NewRandom returns an agent playing uniformly random legal moves. A nil
// source is seeded from the clock.
func NewRandom(r *rand.Rand) Agent {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &randomAgent{rand: r}
}

func (a *randomAgent) FindMove(state game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, errors.WithStack(ErrNoMoves)
	}
	return moves[a.rand.Intn(len(moves))], metrics.SearchMetric{}, nil
}
