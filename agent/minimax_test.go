package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

func TestMinimaxTakesImmediateWin(t *testing.T) {
	a, err := NewMinimax(game.X, seeded(1))
	require.NoError(t, err)

	b := parse(t,
		"XX-",
		"OO-",
		"---")

	move := a.Decide(b)
	require.NotNil(t, move)
	require.Equal(t, game.Coordinate{Row: 0, Col: 2}, move.Coordinate,
		"an immediate win scores +1 and dominates every alternative")
	require.Equal(t, game.X, move.Mark)
}

func TestMinimaxBlocksOpponentWin(t *testing.T) {
	a, err := NewMinimax(game.O, seeded(1))
	require.NoError(t, err)

	b := parse(t,
		"XX-",
		"O--",
		"---")

	move := a.Decide(b)
	require.NotNil(t, move)
	require.Equal(t, game.Coordinate{Row: 0, Col: 2}, move.Coordinate,
		"every non-blocking move loses and scores -1")
}

func TestMinimaxPunishesACornerTrap(t *testing.T) {
	// X owns two corners on a diagonal with the center blocked; O must pick
	// one of the two winning threats to block, and minimax must see the
	// double threat a ply earlier than OneStepAhead would.
	a, err := NewMinimax(game.O, seeded(1))
	require.NoError(t, err)

	b := parse(t,
		"X--",
		"-O-",
		"--X")

	move := a.Decide(b)
	require.NotNil(t, move)
	require.NotContains(t, []game.Coordinate{{Row: 0, Col: 2}, {Row: 2, Col: 0}}, move.Coordinate,
		"taking the free corner lets X fork; O must play an edge")
}

func TestMinimaxLeavesBoardUntouched(t *testing.T) {
	a, err := NewMinimax(game.X, seeded(1))
	require.NoError(t, err)

	b := parse(t,
		"X--",
		"-O-",
		"---")
	before := b.Copy()

	a.Decide(b)

	require.Equal(t, *before, *b, "search must stay on the agent's scratch copy")
}

func TestPositionValuesTerminalScores(t *testing.T) {
	t.Run("winning placement scores +1", func(t *testing.T) {
		b := parse(t,
			"XX-",
			"OO-",
			"---")
		values := positionValues(b.Copy(), game.X)
		require.Equal(t, 1, values[game.Coordinate{Row: 0, Col: 2}])
	})

	t.Run("board-filling placement scores 0", func(t *testing.T) {
		b := parse(t,
			"XOX",
			"XOO",
			"OX-")
		values := positionValues(b.Copy(), game.X)
		require.Equal(t, map[game.Coordinate]int{{Row: 2, Col: 2}: 0}, values)
	})

	t.Run("handing the opponent a win scores -1", func(t *testing.T) {
		b := parse(t,
			"XX-",
			"OO-",
			"---")
		values := positionValues(b.Copy(), game.O)
		require.Equal(t, -1, values[game.Coordinate{Row: 2, Col: 0}],
			"any O move that ignores the threat lets X complete the top row")
	})
}
