package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tictactoe/agent"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Update struct {
	Step   int
	Player game.Mark
	Move   game.Move
	State  game.Board
}

// Observer is called with the starting position (Step 0, no move) and after
// every move played.
type Observer func(Update)

type Option func(e *Local)

type Local struct {
	State     game.Board
	agents    map[game.Mark]agent.Agent
	observers []Observer
}

func WithState(state game.Board) Option {
	return func(e *Local) {
		e.State = state
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// LocalEngine pits two agents against each other in this process. Cross
// moves first.
func LocalEngine(cross, nought agent.Agent, options ...Option) *Local {
	if cross == nil || nought == nil {
		panic("need an agent for both players")
	}

	e := &Local{
		State: game.NewBoard(),
		agents: map[game.Mark]agent.Agent{
			game.Cross:  cross,
			game.Nought: nought,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.NextToMove(),
		StartTime:      start,
	}
	moveMetrics := make([]metrics.MoveMetric, 0, MaxMoves)

	log.Debug().Msgf("player %v is starting", gameMetric.StartingPlayer)
	e.notify(Update{State: e.State})

	step := 1
	for e.State.Outcome() == game.InProgress {
		player := e.State.NextToMove()

		move, searchMetric, err := e.agents[player].FindMove(e.State)
		if err != nil {
			return game.InProgress, gameMetric, moveMetrics, errors.WithMessagef(err, "player %v at step %d", player, step)
		}

		next, err := e.State.Apply(move, player)
		if err != nil {
			return game.InProgress, gameMetric, moveMetrics, errors.WithMessagef(err, "player %v at step %d", player, step)
		}
		log.Debug().Int("step", step).Stringer("player", player).Stringer("move", move).Msg("move played")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		e.State = next
		e.notify(Update{Step: step, Player: player, Move: move, State: next})
		step++
	}

	outcome := e.State.Outcome()
	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, outcome)
	return outcome, gameMetric, moveMetrics, nil
}

func (e *Local) notify(u Update) {
	for _, observer := range e.observers {
		observer(u)
	}
}
