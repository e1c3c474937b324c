package searcher

import (
	"tictactoe/game"
)

type MoveStat struct {
	Move    game.Move
	Visits  int
	Rewards float64
	Average float64
}

// Policy returns the statistics of n's children in insertion order.
func (n *Node) Policy() []MoveStat {
	policy := make([]MoveStat, 0, len(n.children))
	for _, child := range n.children {
		policy = append(policy, MoveStat{
			Move:    child.move,
			Visits:  child.visits,
			Rewards: child.rewards,
			Average: child.Average(),
		})
	}
	return policy
}
