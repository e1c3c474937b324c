package searcher

import (
	"tictactoe/game"
)

// Node is one position in the search tree. A parent owns its children; the
// parent pointer is only followed during backpropagation.
type Node struct {
	state    game.Board
	parent   *Node
	move     game.Move
	hasMove  bool
	children []*Node
	untried  []game.Move
	visits   int
	rewards  float64
}

// NewNode creates a search root for state.
func NewNode(state game.Board) *Node {
	return newNode(nil, game.Move{}, false, state)
}

func newNode(parent *Node, move game.Move, hasMove bool, state game.Board) *Node {
	moves := state.LegalMoves()
	return &Node{
		state:    state,
		parent:   parent,
		move:     move,
		hasMove:  hasMove,
		children: make([]*Node, 0, len(moves)),
		untried:  moves,
	}
}

// IsFullyExpanded is true once every legal move has a child. A board without
// legal moves is trivially fully expanded.
func (n *Node) IsFullyExpanded() bool {
	return len(n.untried) == 0
}

func (n *Node) IsTerminal() bool {
	return n.state.IsTerminal()
}

func (n *Node) Board() game.Board { return n.state }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) Visits() int       { return n.visits }
func (n *Node) Rewards() float64  { return n.rewards }

// Move returns the move that led here from the parent; false for the root.
func (n *Node) Move() (game.Move, bool) {
	return n.move, n.hasMove
}

// Average is rewards per visit, 0 for an unvisited node.
func (n *Node) Average() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// expand pops the last untried move and appends the resulting child.
func (n *Node) expand() *Node {
	last := len(n.untried) - 1
	move := n.untried[last]
	n.untried = n.untried[:last]

	player := n.state.NextToMove()
	state, err := n.state.Apply(move, player)
	if err != nil {
		// Untried moves come from LegalMoves of the same immutable board
		panic(err)
	}

	child := newNode(n, move, true, state)
	n.children = append(n.children, child)
	return child
}

// bestChild returns the first child with the highest UCB1 score.
func (n *Node) bestChild(c float64) *Node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	policy := newUCB1(c, n.visits)
	var best *Node
	bestScore := 0.0
	for _, child := range n.children {
		score := policy.evaluate(child.rewards, child.visits)
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// update records one rollout result and returns the parent.
func (n *Node) update(reward float64) *Node {
	n.visits++
	n.rewards += reward
	return n.parent
}

func (n *Node) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// size counts the nodes of the subtree rooted at n.
func (n *Node) size() int {
	count := 1
	for _, child := range n.children {
		count += child.size()
	}
	return count
}
