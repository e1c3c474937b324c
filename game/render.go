package game

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

var markColors = map[Mark]string{
	Cross:  "#E88388",
	Nought: "#71BEF2",
}

// Render writes the board with the same characters as String, with coloured
// marks when the output supports it. Row and column indices frame the grid so
// console players can read off "row,col" coordinates.
func (b Board) Render(out *termenv.Output) error {
	var sb strings.Builder
	sb.WriteString("  0 1 2\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Size; c++ {
			mark := b[r][c]
			style := out.String(mark.String())
			if color, ok := markColors[mark]; ok {
				style = style.Foreground(out.Color(color)).Bold()
			} else {
				style = style.Faint()
			}
			sb.WriteString(style.String())
			if c < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	_, err := fmt.Fprint(out, sb.String())
	return err
}
