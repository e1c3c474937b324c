package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
	"tictactoe/session"
)

func main() {
	mode := flag.String("mode", "play", "One of play, analyze or experiment")
	iterations := flag.Int("iterations", searcher.DefaultIterations, "Number of MCTS iterations per move")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "UCB1 exploration constant")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	board := flag.String("board", "", "Board to analyze, e.g. \"XX./OO./...\"")
	dot := flag.String("dot", "", "Write the analyzed search tree to this DOT file")
	games := flag.Int("games", meta.GAMES, "Number of games per experiment matchup")
	opponent := flag.String("opponent", "random", "Experiment opponent, random or mcts")
	opponentIterations := flag.Int("opponent-iterations", meta.OPPONENT_ITERATIONS, "Iterations of the mcts opponent")
	out := flag.String("out", meta.OUT_DIR, "Experiment output directory")
	logLevel := flag.String("log-level", "info", "Log level")
	color := flag.Bool("color", true, "Colour the board")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := validateFlags(*iterations, *exploration, *games, *opponentIterations); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	options := []searcher.Option{
		searcher.WithExploration(*exploration),
		searcher.WithSeed(*seed),
	}

	switch *mode {
	case "play":
		output := termenv.NewOutput(os.Stdout)
		if !*color {
			output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
		}
		s := session.New(os.Stdin, output,
			session.WithIterations(*iterations),
			session.WithSearchOptions(options...),
		)
		if err := s.Run(); err != nil {
			log.Fatal().Err(err).Msg("session failed")
		}

	case "analyze":
		if err := analyze(*board, *iterations, *dot, options); err != nil {
			log.Fatal().Err(err).Msg("analysis failed")
		}

	case "experiment":
		cfg := experiments.Config{OutDir: *out, NumGames: *games, Seed: *seed}
		var report experiments.Report
		switch *opponent {
		case "random":
			report, err = experiments.RunVersusRandom(cfg, meta.BUDGETS, *exploration)
		case "mcts":
			report, err = experiments.RunVersusMCTS(cfg, *iterations, *opponentIterations, *exploration)
		default:
			log.Fatal().Msgf("unknown opponent %q", *opponent)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		for _, result := range report.Results {
			fmt.Printf("%v vs %v: %d wins, %d draws, %d losses\n", result.Agent1, result.Agent2, result.Wins, result.Draws, result.Losses)
		}
		fmt.Printf("Results stored in %s\n", report.Dir)

	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// validateFlags rejects settings the search options would otherwise replace
// with their defaults.
func validateFlags(iterations int, exploration float64, games, opponentIterations int) error {
	switch {
	case iterations <= 0:
		return errors.Errorf("-iterations must be positive, got %d", iterations)
	case exploration < 0:
		return errors.Errorf("-exploration must not be negative, got %v", exploration)
	case games <= 0:
		return errors.Errorf("-games must be positive, got %d", games)
	case opponentIterations <= 0:
		return errors.Errorf("-opponent-iterations must be positive, got %d", opponentIterations)
	}
	return nil
}

func analyze(text string, iterations int, dot string, options []searcher.Option) error {
	state := game.NewBoard()
	if text != "" {
		var err error
		if state, err = game.ParseBoard(text); err != nil {
			return err
		}
	}

	root := searcher.NewNode(state)
	move, err := searcher.NewMCTS(options...).Search(root, iterations)
	if err != nil {
		return err
	}

	fmt.Print(state)
	fmt.Printf("%v to move, best move %v\n", state.NextToMove(), move)
	for _, stat := range root.Policy() {
		fmt.Printf("  %v  visits %5d  average %+.3f\n", stat.Move, stat.Visits, stat.Average)
	}

	if dot == "" {
		return nil
	}
	graph, err := root.ToDot(meta.DOT_DEPTH)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dot, []byte(graph), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dot, err)
	}
	log.Info().Msgf("stored search tree in %s", dot)
	return nil
}
