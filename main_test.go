package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/meta"
	"tictactoe/searcher"
)

func TestValidateFlags(t *testing.T) {
	t.Run("accepts the defaults", func(t *testing.T) {
		require.NoError(t, validateFlags(searcher.DefaultIterations, searcher.DefaultExploration, meta.GAMES, meta.OPPONENT_ITERATIONS))
	})

	t.Run("accepts zero exploration", func(t *testing.T) {
		require.NoError(t, validateFlags(100, 0, 1, 1))
	})

	tests := []struct {
		name               string
		iterations         int
		exploration        float64
		games              int
		opponentIterations int
	}{
		{"zero iterations", 0, 1, 1, 1},
		{"negative iterations", -3, 1, 1, 1},
		{"negative exploration", 100, -0.1, 1, 1},
		{"zero games", 100, 1, 0, 1},
		{"zero opponent iterations", 100, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, validateFlags(tt.iterations, tt.exploration, tt.games, tt.opponentIterations))
		})
	}
}
