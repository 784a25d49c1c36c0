package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// parse builds a board from three rows of "X", "O", and "-" characters.
func parse(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	require.Len(t, rows, game.Size)

	b := game.NewBoard()
	for row, line := range rows {
		require.Len(t, line, game.Size)
		for col, ch := range line {
			switch ch {
			case 'X':
				b.Place(game.Coordinate{Row: row, Col: col}, game.X)
			case 'O':
				b.Place(game.Coordinate{Row: row, Col: col}, game.O)
			}
		}
	}
	return b
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}
