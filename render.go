package main

import (
	"io"
	"nestris/game"
	"strings"

	"github.com/muesli/termenv"
)

// renderBoard draws the board with filled cells shaded and the well column highlighted
func renderBoard(w io.Writer, b game.Board) string {
	out := termenv.NewOutput(w)
	filled := out.String("[]").Reverse()
	well := out.String(" .").Foreground(out.Color("4"))
	empty := out.String(" .").Faint()

	var sb strings.Builder
	for y := 0; y < game.NumRows; y++ {
		sb.WriteByte('|')
		for x := 0; x < game.NumCols; x++ {
			switch {
			case b.Filled(x, y):
				sb.WriteString(filled.String())
			case x == game.NumCols-1:
				sb.WriteString(well.String())
			default:
				sb.WriteString(empty.String())
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("--", game.NumCols) + "+\n")
	return sb.String()
}
