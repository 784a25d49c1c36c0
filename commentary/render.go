package commentary

import (
	"strings"

	"github.com/muesli/termenv"

	"tictactoe/game"
)

// Render draws the board as three rows of X/O/- characters. X is drawn red
// and O blue when the profile supports color; under termenv.Ascii the result
// is the plain nine-character grid.
func Render(board *game.Board, profile termenv.Profile) string {
	var sb strings.Builder
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			mark := board.At(game.Coordinate{Row: row, Col: col})
			cell := profile.String(mark.String())
			switch mark {
			case game.X:
				cell = cell.Foreground(profile.Color("1"))
			case game.O:
				cell = cell.Foreground(profile.Color("4"))
			default:
				cell = cell.Faint()
			}
			sb.WriteString(cell.String())
		}
		if row < game.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
