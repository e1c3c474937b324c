package metrics

import (
	"time"

	"tictactoe/game"
)

type SearchMetric struct {
	Iterations   int
	Exploration  float64
	Duration     time.Duration
	Episodes     int
	DecisivePlayouts int // Rollouts that reached a decisive outcome
	MaxDepth     int
	TreeSize     int
}

type MoveMetric struct {
	Step   int
	Player game.Mark
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Mark
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics for a single search. Searches are sequential, so
// no synchronisation is needed.
type Collector interface {
	Start(iterations int, exploration float64)
	AddEpisode(depth int)
	AddDecisivePlayout()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	iterations   int
	exploration  float64
	startTime    time.Time
	episodes     int
	decisivePlayouts int
	maxDepth     int
	treeSize     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	*m = collector{
		iterations:  iterations,
		exploration: exploration,
		startTime:   time.Now(),
		treeSize:    1, // Root
	}
}

func (m *collector) AddEpisode(depth int) {
	m.episodes++
	m.maxDepth = max(m.maxDepth, depth)
}

func (m *collector) AddDecisivePlayout() {
	m.decisivePlayouts++
}

func (m *collector) AddNode() {
	m.treeSize++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		DecisivePlayouts: m.decisivePlayouts,
		MaxDepth:     m.maxDepth,
		TreeSize:     m.treeSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) AddEpisode(depth int)                      {}
func (m *dummyCollector) AddDecisivePlayout()                           {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
