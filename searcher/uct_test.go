package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB1(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB1(DefaultExploration, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCB1Evaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB1(1.5, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + 1.5*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + c*sqrt(ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCB1(DefaultExploration, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("zero exploration is the raw average", func(t *testing.T) {
		policy := newUCB1(0, 1000)
		require.Equal(t, -0.25, policy.evaluate(-2.5, 10))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCB1(DefaultExploration, 100).evaluate(5.0, 10)
		score2 := newUCB1(DefaultExploration, 1000).evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCB1(DefaultExploration, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(5.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCB1(DefaultExploration, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(10.0, 10)

		require.Greater(t, score2, score1,
			"More rewards should increase exploitation term")
	})
}
