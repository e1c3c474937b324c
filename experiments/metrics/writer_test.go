package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{{ID: 0}, {ID: 1, Iterations: 100, Exploration: 1.5}}

		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "iterations", "exploration"},
			{"0", "0", "0"},
			{"1", "100", "1.5"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:     1,
			Cross:  1,
			Nought: 0,
			GameMetric: GameMetric{
				StartingPlayer: game.Cross,
				Outcome:        game.CrossWins,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     7,
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "0", "X", "X wins", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       game.Nought,
				Move:         game.Move{Row: 1, Col: 2},
				SearchMetric: SearchMetric{Episodes: 50, DecisivePlayouts: 30, MaxDepth: 4, TreeSize: 51},
			},
		}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "decisive_playouts", rows[0][6])
		require.Equal(t, []string{"1", "1", "O", "1,2", "0s", "50", "30", "4", "51"}, rows[1])
	})

	t.Run("results chart", func(t *testing.T) {
		results := []MatchupResult{{
			Agent1: AgentConfig{ID: 1, Iterations: 100},
			Agent2: AgentConfig{ID: 0},
			Wins:   8,
			Draws:  1,
			Losses: 1,
		}}

		require.NoError(t, w.WriteChart("test", results))

		content, err := os.ReadFile(filepath.Join(w.Dir(), "results.html"))
		require.NoError(t, err)
		require.Contains(t, string(content), "echarts")
	})
}

func TestAgentConfig(t *testing.T) {
	require.True(t, AgentConfig{ID: 3}.IsRandom())
	require.Equal(t, "agent3(random)", AgentConfig{ID: 3}.String())
	require.Equal(t, "agent1(mcts 200)", AgentConfig{ID: 1, Iterations: 200}.String())
}
