package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Move places a mark on the cell at (Row, Col), both 0-based.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

func (m Move) OnBoard() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// ParseMove reads a move written as "row,col", e.g. "1,2".
func ParseMove(s string) (Move, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Move{}, errors.Wrapf(ErrInvalidMove, "expected \"row,col\", got %q", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, errors.Wrapf(ErrInvalidMove, "bad row %q", parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, errors.Wrapf(ErrInvalidMove, "bad column %q", parts[1])
	}

	move := Move{Row: row, Col: col}
	if !move.OnBoard() {
		return Move{}, errors.Wrapf(ErrInvalidMove, "%v is off the board", move)
	}
	return move, nil
}
