package game

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidMove = errors.New("invalid move")

// Board is a 3x3 grid. It is a value type: Apply always returns a fresh copy
// and never touches the receiver.
type Board [Size][Size]Mark

// NewBoard returns the empty grid.
func NewBoard() Board {
	return Board{}
}

// Marks counts the marks placed by each player.
func (b Board) Marks() (cross, nought int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Cross:
				cross++
			case Nought:
				nought++
			}
		}
	}
	return cross, nought
}

// Valid reports whether the mark counts can arise from Cross moving first and
// the players alternating.
func (b Board) Valid() bool {
	cross, nought := b.Marks()
	return cross == nought || cross == nought+1
}

// NextToMove is the player who would move if play continued. Cross moves first.
func (b Board) NextToMove() Mark {
	cross, nought := b.Marks()
	if cross == nought {
		return Cross
	}
	return Nought
}

func (b Board) Outcome() Outcome {
	for _, line := range winLines {
		first := b.At(line[0])
		if first == Empty {
			continue
		}
		if b.At(line[1]) == first && b.At(line[2]) == first {
			if first == Cross {
				return CrossWins
			}
			return NoughtWins
		}
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return InProgress
			}
		}
	}
	return Draw
}

func (b Board) IsTerminal() bool {
	return b.Outcome() != InProgress
}

// LegalMoves lists the empty cells in row-major order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b Board) At(m Move) Mark {
	return b[m.Row][m.Col]
}

// Apply returns the board with player's mark placed at move. The cell must be
// empty and on the board.
func (b Board) Apply(move Move, player Mark) (Board, error) {
	if !player.IsPlayer() {
		return b, errors.Wrapf(ErrInvalidMove, "%v cannot be placed", player)
	}
	if !move.OnBoard() {
		return b, errors.Wrapf(ErrInvalidMove, "%v is off the board", move)
	}
	if b.At(move) != Empty {
		return b, errors.Wrapf(ErrInvalidMove, "cell %v is occupied by %v", move, b.At(move))
	}

	next := b
	next[move.Row][move.Col] = player
	return next, nil
}

// Play applies move for the player whose turn it is.
func (b Board) Play(move Move) (Board, error) {
	return b.Apply(move, b.NextToMove())
}

// ParseBoard reads the format produced by String. Characters other than
// '.', 'X', 'O' (and their lowercase or '_'/'-' spellings of empty) are ignored,
// so "XX./OO./..." and "X|X|.\nO|O|.\n.|.|." both work.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, ch := range s {
		var mark Mark
		switch ch {
		case '.', '_', '-':
			mark = Empty
		case 'X', 'x':
			mark = Cross
		case 'O', 'o':
			mark = Nought
		default:
			continue
		}
		if i >= Size*Size {
			return Board{}, errors.Errorf("board %q has more than %d cells", s, Size*Size)
		}
		b[i/Size][i%Size] = mark
		i++
	}

	if i != Size*Size {
		return Board{}, errors.Errorf("board %q has %d cells, want %d", s, i, Size*Size)
	}
	if !b.Valid() {
		return Board{}, errors.Errorf("board %q has impossible mark counts", s)
	}
	return b, nil
}

// String renders one line per row: '.' empty, 'X' cross, 'O' nought.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteString(b[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
