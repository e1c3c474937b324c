package searcher

import "math"

// Hyperparameters for MCTS

const DefaultIterations = 2000

// Exploration constant C in avg + C*sqrt(ln(N)/n)
const DefaultExploration = math.Sqrt2

// Rollout rewards. Any decisive result scores Decisive regardless of who won,
// and backpropagation negates it at every level.
const Decisive = 1.0
const Drawn = 0.0
