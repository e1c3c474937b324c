// meta/meta.go
package meta

// GAMES defines the number of games per experiment matchup.
const GAMES = 20

// OPPONENT_ITERATIONS defines the budget of the second agent in MCTS matchups.
const OPPONENT_ITERATIONS = 200

// BUDGETS defines the MCTS budgets played against the random agent.
var BUDGETS = []int{10, 50, 200, 1000}

// OUT_DIR defines where experiment results are stored.
const OUT_DIR = "results"

// DOT_DEPTH defines how many tree levels the analyze mode exports.
const DOT_DEPTH = 2
