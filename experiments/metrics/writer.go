package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type AgentConfig struct {
	ID          int
	Iterations  int // 0 plays uniformly random moves
	Exploration float64
}

func (c AgentConfig) IsRandom() bool {
	return c.Iterations <= 0
}

func (c AgentConfig) String() string {
	if c.IsRandom() {
		return fmt.Sprintf("agent%d(random)", c.ID)
	}
	return fmt.Sprintf("agent%d(mcts %d)", c.ID, c.Iterations)
}

type GameRecord struct {
	ID     int
	Cross  int // AgentConfig.ID
	Nought int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// MatchupResult counts the results of one matchup from the first agent's side.
type MatchupResult struct {
	Agent1 AgentConfig
	Agent2 AgentConfig
	Wins   int
	Losses int
	Draws  int
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "iterations", "exploration"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "cross", "nought", "starting_player", "outcome", "start_time", "end_time", "duration", "moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Cross),
			strconv.Itoa(record.Nought),
			record.StartingPlayer.String(),
			record.Outcome.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "episodes", "decisive_playouts", "max_depth", "tree_size"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.DecisivePlayouts),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.TreeSize),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteChart renders the matchup results as a stacked bar chart in results.html.
func (w *Writer) WriteChart(title string, results []MatchupResult) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "results from the first agent's side",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	labels := make([]string, 0, len(results))
	wins := make([]opts.BarData, 0, len(results))
	draws := make([]opts.BarData, 0, len(results))
	losses := make([]opts.BarData, 0, len(results))
	for _, result := range results {
		labels = append(labels, fmt.Sprintf("%v vs %v", result.Agent1, result.Agent2))
		wins = append(wins, opts.BarData{Value: result.Wins})
		draws = append(draws, opts.BarData{Value: result.Draws})
		losses = append(losses, opts.BarData{Value: result.Losses})
	}

	bar.SetXAxis(labels).
		AddSeries("wins", wins, charts.WithBarChartOpts(opts.BarChart{Stack: "total"})).
		AddSeries("draws", draws, charts.WithBarChartOpts(opts.BarChart{Stack: "total"})).
		AddSeries("losses", losses, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))

	page := components.NewPage()
	page.AddCharts(bar)

	path := filepath.Join(w.baseDir, "results.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
