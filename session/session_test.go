package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type scriptedAgent struct {
	moves []game.Move
}

func (s *scriptedAgent) FindMove(state game.Board) (game.Move, metrics.SearchMetric, error) {
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, metrics.SearchMetric{}, nil
}

func newTestSession(input string, options ...Option) (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	return New(strings.NewReader(input), out, options...), &buf
}

func TestPlay(t *testing.T) {
	t.Run("human wins as X", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		s, out := newTestSession("0,0\n0,1\n0,2\n", WithOpponent(opponent))

		outcome, err := s.Play(game.Cross)

		require.NoError(t, err)
		require.Equal(t, game.CrossWins, outcome)
		require.Contains(t, out.String(), "MCTS played 1,0")
		require.Contains(t, out.String(), "0 X X X\n1 O O .\n2 . . .\n")
		require.True(t, strings.HasSuffix(out.String(), "Game over\nHuman Player Wins!\n"))
	})

	t.Run("engine moves first when the human is O", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
		s, out := newTestSession("1,0\n1,1\n", WithOpponent(opponent))

		outcome, err := s.Play(game.Nought)

		require.NoError(t, err)
		require.Equal(t, game.CrossWins, outcome)
		require.True(t, strings.HasSuffix(out.String(), "Game over\nMCTS Wins!\n"))
		require.Less(t, strings.Index(out.String(), "MCTS is making a move"), strings.Index(out.String(), "It is your move."))
	})

	t.Run("reprompts on bad input", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		s, out := newTestSession("hello\n3,3\n0,0\n0,0\n1,0\n0,1\n0,2\n", WithOpponent(opponent))

		outcome, err := s.Play(game.Cross)

		require.NoError(t, err)
		require.Equal(t, game.CrossWins, outcome)
		require.Equal(t, 2, strings.Count(out.String(), "You did not input a valid move."))
		require.Equal(t, 2, strings.Count(out.String(), "That move has already been played. Pick another move."))
	})

	t.Run("draw", func(t *testing.T) {
		// X O X / X O O / O X X
		opponent := &scriptedAgent{moves: []game.Move{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}}}
		s, out := newTestSession("0,0\n0,2\n1,0\n2,1\n2,2\n", WithOpponent(opponent))

		outcome, err := s.Play(game.Cross)

		require.NoError(t, err)
		require.Equal(t, game.Draw, outcome)
		require.True(t, strings.HasSuffix(out.String(), "It's a Draw!\n"))
	})

	t.Run("input ending mid-game quits", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 1}}}
		s, _ := newTestSession("0,0\n", WithOpponent(opponent))

		_, err := s.Play(game.Cross)

		require.ErrorIs(t, err, ErrQuit)
	})
}

func TestRun(t *testing.T) {
	t.Run("asks again for an invalid side and stops on Quit", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		s, out := newTestSession("x\nX\n0,0\n0,1\n0,2\nQuit\n", WithOpponent(opponent))

		require.NoError(t, s.Run())
		require.Contains(t, out.String(), "Your input was not correct. Read carefully how to input.")
		require.Equal(t, 1, strings.Count(out.String(), "Game over"))
	})

	t.Run("enter starts another game", func(t *testing.T) {
		opponent := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		s, out := newTestSession("X\n0,0\n0,1\n0,2\n\nX\n0,0\n0,1\n0,2\nQuit\n", WithOpponent(opponent))

		require.NoError(t, s.Run())
		require.Equal(t, 2, strings.Count(out.String(), "Human Player Wins!"))
	})

	t.Run("end of input is a clean exit", func(t *testing.T) {
		s, _ := newTestSession("")
		require.NoError(t, s.Run())
	})

	t.Run("plays against the search engine", func(t *testing.T) {
		cells := []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2", "2,0", "2,1", "2,2"}
		input := "X\n" + strings.Join(cells, "\n") + "\n"
		s, out := newTestSession(input,
			WithIterations(200),
			WithSearchOptions(searcher.WithSeed(7), searcher.WithLogger(zerolog.Nop())),
		)

		require.NoError(t, s.Run())
		require.Contains(t, out.String(), "Game over")
		require.Contains(t, out.String(), "MCTS played")
	})
}
