package game

// Mark is the content of a single cell, and doubles as the player identity.
type Mark uint8

const (
	Empty Mark = iota
	Cross      // Moves first
	Nought
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player, Empty stays Empty
func (m Mark) Opponent() Mark {
	switch m {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return Empty
	}
}

// IsPlayer reports whether the mark can be placed by a player.
func (m Mark) IsPlayer() bool {
	return m == Cross || m == Nought
}

type Outcome int

const (
	InProgress Outcome = iota
	CrossWins
	NoughtWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case CrossWins:
		return "X wins"
	case NoughtWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsDecisive is true when one of the players has won
func (o Outcome) IsDecisive() bool {
	return o == CrossWins || o == NoughtWins
}

// Winner returns the winning player, or Empty for draws and unfinished games.
func (o Outcome) Winner() Mark {
	switch o {
	case CrossWins:
		return Cross
	case NoughtWins:
		return Nought
	default:
		return Empty
	}
}

const Size = 3

// winLines lists the 8 triples that win the game: rows, columns, then diagonals.
// Outcome scans them in this order.
var winLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}
