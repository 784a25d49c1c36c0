package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("accepts every cell on the board", func(t *testing.T) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				c, err := NewCoordinate(row, col)
				require.NoError(t, err)
				require.Equal(t, Coordinate{Row: row, Col: col}, c)
			}
		}
	})

	t.Run("rejects out-of-range rows and columns", func(t *testing.T) {
		for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			_, err := NewCoordinate(rc[0], rc[1])
			require.ErrorIs(t, err, ErrOutOfBounds, "coordinate (%d, %d) should be rejected", rc[0], rc[1])
		}
	})
}

func TestMarkOther(t *testing.T) {
	require.Equal(t, O, X.Other())
	require.Equal(t, X, O.Other())
	require.Equal(t, Empty, Empty.Other(), "Empty has no opponent")
}

func TestMarkString(t *testing.T) {
	require.Equal(t, "X", X.String())
	require.Equal(t, "O", O.String())
	require.Equal(t, "-", Empty.String())
}

func TestOutcomeRanking(t *testing.T) {
	want := []string{"X_WINS", "O_WINS", "DRAW", "X_PENALTY", "O_PENALTY"}
	require.Len(t, RankedOutcomes, len(want))
	for i, outcome := range RankedOutcomes {
		require.Equal(t, want[i], outcome.String(), "outcome rank %d", i)
	}
}

func TestOutcomeForMark(t *testing.T) {
	require.Equal(t, XWins, WinFor(X))
	require.Equal(t, OWins, WinFor(O))
	require.Equal(t, XPenalty, PenaltyFor(X))
	require.Equal(t, OPenalty, PenaltyFor(O))
}
