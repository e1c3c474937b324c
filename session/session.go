package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/searcher"
)

// ErrQuit is returned when the input ends mid-game.
var ErrQuit = errors.New("player quit")

type Option func(s *Session)

// Session plays console games between a human and the engine.
type Session struct {
	in         *bufio.Scanner
	out        *termenv.Output
	iterations int
	searchOpts []searcher.Option
	opponent   agent.Agent
}

func WithIterations(iterations int) Option {
	return func(s *Session) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithSearchOptions(options ...searcher.Option) Option {
	return func(s *Session) {
		s.searchOpts = append(s.searchOpts, options...)
	}
}

// WithOpponent replaces the MCTS opponent.
func WithOpponent(opponent agent.Agent) Option {
	return func(s *Session) {
		s.opponent = opponent
	}
}

func New(in io.Reader, out *termenv.Output, options ...Option) *Session {
	s := &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		iterations: searcher.DefaultIterations,
	}
	for _, option := range options {
		option(s)
	}
	if s.opponent == nil {
		s.opponent = agent.NewMCTS(s.iterations, s.searchOpts...)
	}
	return s
}

// Run plays games until the player types Quit or the input ends.
func (s *Session) Run() error {
	for {
		human, err := s.chooseSide()
		if err != nil {
			return ignoreQuit(err)
		}

		if _, err := s.Play(human); err != nil {
			return ignoreQuit(err)
		}

		answer, err := s.ask("To quit playing, type 'Quit', otherwise hit enter to start a new game.")
		if err != nil || answer == "Quit" {
			return ignoreQuit(err)
		}
	}
}

// Play runs a single game with the human playing the given mark.
func (s *Session) Play(human game.Mark) (game.Outcome, error) {
	humanAgent := &humanAgent{session: s}
	cross, nought := agent.Agent(humanAgent), s.opponent
	if human == game.Nought {
		cross, nought = nought, cross
	}

	e := engine.LocalEngine(cross, nought, engine.WithObserver(func(u engine.Update) {
		if u.Step > 0 && u.Player != human {
			s.println(fmt.Sprintf("MCTS played %v", u.Move))
		}
		if err := u.State.Render(s.out); err != nil {
			log.Warn().Err(err).Msg("failed to render board")
		}
		if !u.State.IsTerminal() && u.State.NextToMove() != human {
			s.println("MCTS is making a move")
		}
	}))

	outcome, _, _, err := e.Run()
	if err != nil {
		return outcome, err
	}

	s.println("Game over")
	switch outcome.Winner() {
	case human:
		s.println("Human Player Wins!")
	case human.Opponent():
		s.println("MCTS Wins!")
	default:
		s.println("It's a Draw!")
	}
	return outcome, nil
}

func (s *Session) chooseSide() (game.Mark, error) {
	for {
		answer, err := s.ask("Would you like to be X or O? (Enter X or O, no spaces, uppercase)")
		if err != nil {
			return game.Empty, err
		}
		switch answer {
		case "X":
			return game.Cross, nil
		case "O":
			return game.Nought, nil
		}
		s.println("Your input was not correct. Read carefully how to input.")
	}
}

// ask prints the prompt and returns the next line of input, trimmed.
func (s *Session) ask(prompt string) (string, error) {
	s.println(prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", errors.WithStack(ErrQuit)
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func ignoreQuit(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
