package experiments

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type Config struct {
	OutDir   string
	NumGames int // Per matchup
	Seed     uint64
}

type Report struct {
	Dir     string
	Results []metrics.MatchupResult
}

// RunVersusRandom pits MCTS agents of increasing budgets against a random player.
func RunVersusRandom(cfg Config, budgets []int, exploration float64) (Report, error) {
	baseline := metrics.AgentConfig{ID: 0}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, budget := range budgets {
		config := metrics.AgentConfig{ID: i + 1, Iterations: budget, Exploration: exploration}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("versus_random", cfg, configs, matchUps)
}

// RunVersusMCTS pits two MCTS budgets against each other.
func RunVersusMCTS(cfg Config, budget1, budget2 int, exploration float64) (Report, error) {
	config1 := metrics.AgentConfig{ID: 1, Iterations: budget1, Exploration: exploration}
	config2 := metrics.AgentConfig{ID: 2, Iterations: budget2, Exploration: exploration}

	return runExperiment("versus_mcts", cfg, []metrics.AgentConfig{config1, config2}, [][]metrics.AgentConfig{{config1, config2}})
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Report, error) {
	if cfg.NumGames <= 0 {
		return Report{}, errors.Errorf("number of games must be positive, got %d", cfg.NumGames)
	}
	for _, config := range configs {
		if config.Exploration < 0 {
			return Report{}, errors.Errorf("%v: exploration must not be negative, got %v", config, config.Exploration)
		}
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]metrics.MatchupResult, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		result := metrics.MatchupResult{Agent1: config1, Agent2: config2}

		log.Info().Msgf("starting matchup %d of %d between %v and %v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.NumGames; i++ {
			// Alternate the starting agent
			cross, nought := config1, config2
			if i%2 == 1 {
				cross, nought = config2, config1
			}

			outcome, gameMetric, moveMetrics, err := runGame(cross, nought, r)
			if err != nil {
				return Report{}, errors.WithMessagef(err, "matchup %d game %d", mi+1, i+1)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Cross:      cross.ID,
				Nought:     nought.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			agent1 := game.Cross
			if i%2 == 1 {
				agent1 = game.Nought
			}
			switch outcome.Winner() {
			case agent1:
				result.Wins++
			case agent1.Opponent():
				result.Losses++
			default:
				result.Draws++
			}

			log.Debug().Msgf("completed matchup %d of %d game %d: %v", mi+1, len(matchUps), i+1, outcome)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %d wins, %d draws, %d losses", mi+1, len(matchUps), result.Wins, result.Draws, result.Losses)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return Report{}, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Report{}, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Report{}, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Report{}, err
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteChart(name, results); err != nil {
		return Report{}, err
	}
	log.Info().Msgf("stored results chart in %s", writer.Dir())

	return Report{Dir: writer.Dir(), Results: results}, nil
}

// runGame executes a single game between two agents
func runGame(cross, nought metrics.AgentConfig, r *rand.Rand) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(createAgent(cross, r), createAgent(nought, r))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, r *rand.Rand) agent.Agent {
	if config.IsRandom() {
		return agent.NewRandom(r)
	}

	options := []searcher.Option{
		searcher.WithRand(r),
		searcher.WithMetrics(),
		searcher.WithLogger(log.Logger.Level(zerolog.InfoLevel)),
		searcher.WithExploration(config.Exploration),
	}
	return agent.NewMCTS(config.Iterations, options...)
}
