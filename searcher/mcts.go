package searcher

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var (
	ErrGameOver   = errors.New("game is over")
	ErrNoChildren = errors.New("root has no searched children")
)

// The final move is picked by raw average reward, without exploration bonus
const finalExploration = 0.0

type Option func(mcts *MCTS)

type MCTS struct {
	exploration float64
	rand        *rand.Rand
	metrics     metrics.Collector
	last        metrics.SearchMetric
	logger      zerolog.Logger
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithRand sets the random source consumed by rollouts.
func WithRand(r *rand.Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *MCTS) {
		m.logger = logger
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		metrics:     metrics.NewDummyCollector(),
		logger:      log.Logger,
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search runs the given number of iterations from root and returns the move
// leading to the child with the best average reward.
func (m *MCTS) Search(root *Node, iterations int) (game.Move, error) {
	if root.IsTerminal() {
		return game.Move{}, errors.Wrapf(ErrGameOver, "cannot search %v", root.state.Outcome())
	}
	iterations = max(iterations, 0)

	m.metrics.Start(iterations, m.exploration)
	for i := 0; i < iterations; i++ {
		m.iterate(root)
	}
	m.last = m.metrics.Complete()

	if len(root.children) == 0 {
		return game.Move{}, errors.Wrapf(ErrNoChildren, "after %d iterations", iterations)
	}

	best := root.bestChild(finalExploration)
	m.logger.Debug().
		Int("iterations", iterations).
		Int("visits", root.visits).
		Int("children", len(root.children)).
		Stringer("move", best.move).
		Float64("average", best.Average()).
		Msg("search complete")

	return best.move, nil
}

// Metrics returns statistics of the last search, empty unless WithMetrics was given.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.last
}

func (m *MCTS) iterate(root *Node) {
	node := selection(root, m.exploration)

	if !node.IsTerminal() && !node.IsFullyExpanded() {
		node = node.expand()
		m.metrics.AddNode()
	}

	reward := m.rollout(node.state)
	backup(node, reward)
	m.metrics.AddEpisode(node.depth())
}

// selection descends by UCB1 until it reaches a terminal node or one with
// untried moves.
func selection(root *Node, c float64) *Node {
	node := root
	for !node.IsTerminal() && node.IsFullyExpanded() {
		node = node.bestChild(c)
	}
	return node
}

// rollout plays uniformly random moves until the game ends. A terminal state
// draws no random numbers.
func (m *MCTS) rollout(state game.Board) float64 {
	for state.Outcome() == game.InProgress {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		move := moves[m.rand.Intn(len(moves))] // Random rollout policy
		next, err := state.Apply(move, state.NextToMove())
		if err != nil {
			panic(err)
		}
		state = next
	}

	if state.Outcome().IsDecisive() {
		m.metrics.AddDecisivePlayout()
		return Decisive
	}
	return Drawn
}

// backup walks from node to the root, flipping the reward's sign at each level.
func backup(node *Node, reward float64) {
	for node != nil {
		node = node.update(reward)
		reward = -reward
	}
}
