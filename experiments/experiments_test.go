package experiments

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/commentary"
	"tictactoe/game"
)

func TestRunTalliesEveryTrial(t *testing.T) {
	matchup := Matchup{
		AgentX:  AgentOneStepAhead,
		AgentO:  AgentRandom,
		Referee: RefereeStrict,
		Seed:    1,
	}

	tally, records, err := Run(matchup, 10, commentary.Nop())
	require.NoError(t, err)

	total := 0
	for outcome, count := range tally {
		require.Contains(t, game.RankedOutcomes[:], outcome)
		total += count
	}
	require.Equal(t, 10, total, "every trial produces exactly one outcome")
	require.Len(t, records, 10)

	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, AgentOneStepAhead, record.AgentX)
		require.Positive(t, record.Steps)
	}
}

func TestRunIsReproducibleForAFixedSeed(t *testing.T) {
	matchup := Matchup{
		AgentX:  AgentRandom,
		AgentO:  AgentRandom,
		Referee: RefereeStrict,
		Seed:    42,
	}

	first, _, err := Run(matchup, 20, commentary.Nop())
	require.NoError(t, err)
	second, _, err := Run(matchup, 20, commentary.Nop())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRunRejectsUnknownParticipants(t *testing.T) {
	_, _, err := Run(Matchup{AgentX: "psychic", AgentO: AgentRandom, Referee: RefereeStrict}, 1, commentary.Nop())
	require.ErrorIs(t, err, ErrUnknownAgent)

	_, _, err = Run(Matchup{AgentX: AgentRandom, AgentO: AgentRandom, Referee: "vigilante"}, 1, commentary.Nop())
	require.ErrorIs(t, err, ErrUnknownReferee)
}

func TestLawfulAgentsNeverDrawPenalties(t *testing.T) {
	matchup := Matchup{
		AgentX:  AgentRandom,
		AgentO:  AgentOneStepAhead,
		Referee: RefereeStrict,
		Seed:    7,
	}

	tally, _, err := Run(matchup, 50, commentary.Nop())
	require.NoError(t, err)

	require.Zero(t, tally[game.XPenalty])
	require.Zero(t, tally[game.OPenalty])
}

func TestMinimaxVersusMinimaxAlwaysDraws(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search on every move is slow")
	}

	matchup := Matchup{
		AgentX:  AgentMinimax,
		AgentO:  AgentMinimax,
		Referee: RefereeStrict,
		Seed:    3,
	}

	tally, _, err := Run(matchup, 3, commentary.Nop())
	require.NoError(t, err)

	require.Equal(t, Tally{game.Draw: 3}, tally, "optimal play from both sides is a draw")
}

func TestMinimaxNeverLosesToRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search on every move is slow")
	}

	t.Run("as X", func(t *testing.T) {
		matchup := Matchup{AgentX: AgentMinimax, AgentO: AgentRandom, Referee: RefereeStrict, Seed: 5}
		tally, _, err := Run(matchup, 100, commentary.Nop())
		require.NoError(t, err)
		require.Zero(t, tally[game.OWins], "minimax as X must not lose")
	})

	t.Run("as O", func(t *testing.T) {
		matchup := Matchup{AgentX: AgentRandom, AgentO: AgentMinimax, Referee: RefereeStrict, Seed: 5}
		tally, _, err := Run(matchup, 100, commentary.Nop())
		require.NoError(t, err)
		require.Zero(t, tally[game.XWins], "minimax as O must not lose")
	})
}

func TestLawlessAgentDrawsPenalties(t *testing.T) {
	matchup := Matchup{
		AgentX:  AgentNoRules,
		AgentO:  AgentRandom,
		Referee: RefereeStrict,
		Seed:    9,
	}

	tally, _, err := Run(matchup, 100, commentary.Nop())
	require.NoError(t, err)

	penalties := tally[game.XPenalty] + tally[game.OPenalty]
	require.GreaterOrEqual(t, penalties, 95,
		"out-of-turn, wrong-mark, and occupied-cell violations are near-certain")
}

func TestTallyReportOrder(t *testing.T) {
	tally := Tally{
		game.OPenalty: 1,
		game.Draw:     2,
		game.XWins:    3,
	}

	var buf bytes.Buffer
	tally.Report(&buf)

	require.Equal(t, "X_WINS: 3\nDRAW: 2\nO_PENALTY: 1\n", buf.String(),
		"outcomes appear in the fixed ranking, absent outcomes are omitted")
}
