// Package experiments runs campaigns: N independent games of the same
// matchup, tallied by outcome.
package experiments

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/agent"
	"tictactoe/commentary"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/referee"
)

// DefaultTrials is the campaign length when none is configured.
const DefaultTrials = 10

var (
	ErrUnknownAgent   = errors.New("unknown agent kind")
	ErrUnknownReferee = errors.New("unknown referee kind")
)

// Agent kinds selectable by name.
const (
	AgentNoRules      = "norules"
	AgentRandom       = "random"
	AgentOneStepAhead = "onestep"
	AgentMinimax      = "minimax"
)

// Referee kinds selectable by name.
const (
	RefereeStrict     = "strict"
	RefereePermissive = "permissive"
)

// Matchup names the participants of a campaign. Seed 0 means seed from the
// clock; any other value makes the campaign reproducible.
type Matchup struct {
	AgentX  string
	AgentO  string
	Referee string
	Seed    uint64
}

// Tally maps each outcome to the number of trials that produced it.
type Tally map[game.Outcome]int

// Report writes the observed outcome counts in the fixed outcome ranking.
func (t Tally) Report(w io.Writer) {
	for _, outcome := range game.RankedOutcomes {
		if count, ok := t[outcome]; ok {
			fmt.Fprintf(w, "%s: %d\n", outcome, count)
		}
	}
}

// Run plays trials games of the matchup, each with a fresh board, fresh
// agents, and a fresh referee. Trial i uses seed Seed+i so individual games
// can be replayed in isolation.
func Run(matchup Matchup, trials int, voice commentary.Commentator) (Tally, []metrics.GameRecord, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	baseSeed := matchup.Seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	log.Info().Msgf("starting campaign: %s (X) vs %s (O) under the %s referee, %d games",
		matchup.AgentX, matchup.AgentO, matchup.Referee, trials)

	tally := Tally{}
	records := make([]metrics.GameRecord, 0, trials)
	for i := 0; i < trials; i++ {
		rng := rand.New(rand.NewSource(baseSeed + uint64(i)))

		x, err := newAgent(matchup.AgentX, game.X, rng, voice)
		if err != nil {
			return nil, nil, fmt.Errorf("agent X: %w", err)
		}
		o, err := newAgent(matchup.AgentO, game.O, rng, voice)
		if err != nil {
			return nil, nil, fmt.Errorf("agent O: %w", err)
		}
		ref, err := newReferee(matchup.Referee, voice)
		if err != nil {
			return nil, nil, err
		}

		e := engine.New(x, o, ref, engine.WithCommentary(voice))

		start := time.Now()
		outcome, steps, err := e.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		tally[outcome]++
		records = append(records, metrics.GameRecord{
			ID:        i + 1,
			AgentX:    matchup.AgentX,
			AgentO:    matchup.AgentO,
			Referee:   matchup.Referee,
			Outcome:   outcome.String(),
			Steps:     steps,
			StartTime: start,
			Duration:  time.Since(start),
		})

		log.Info().Msgf("completed game %d of %d: %s in %d steps", i+1, trials, outcome, steps)
	}

	log.Info().Msg("completed campaign")

	return tally, records, nil
}

func newAgent(kind string, mark game.Mark, rng *rand.Rand, voice commentary.Commentator) (agent.Agent, error) {
	opts := []agent.Option{agent.WithRand(rng), agent.WithCommentary(voice)}
	switch kind {
	case AgentNoRules:
		return agent.NewNoRules(mark, opts...)
	case AgentRandom:
		return agent.NewRandom(mark, opts...)
	case AgentOneStepAhead:
		return agent.NewOneStepAhead(mark, opts...)
	case AgentMinimax:
		return agent.NewMinimax(mark, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, kind)
	}
}

func newReferee(kind string, voice commentary.Commentator) (referee.Referee, error) {
	switch kind {
	case RefereeStrict:
		return referee.NewStrict(referee.WithCommentary(voice)), nil
	case RefereePermissive:
		return referee.NewPermissive(referee.WithCommentary(voice)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReferee, kind)
	}
}
