package agent

import (
	"golang.org/x/exp/rand"

	"tictactoe/commentary"
	"tictactoe/game"
)

// NoRules ignores turn order, cell occupancy, and even its own mark: each
// call it flips a coin on whether to move at all, then picks a random cell
// and a random mark. It exists to exercise the strict referee's penalty
// paths. Great at parties.
type NoRules struct {
	mark    game.Mark
	rng     *rand.Rand
	voice   commentary.Commentator
	speaker commentary.Speaker
}

func NewNoRules(mark game.Mark, opts ...Option) (*NoRules, error) {
	if err := checkMark(mark); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &NoRules{
		mark:    mark,
		rng:     o.rng,
		voice:   o.voice,
		speaker: commentary.SpeakerFor(mark),
	}, nil
}

func (a *NoRules) Decide(board *game.Board) *game.Move {
	if a.rng.Intn(2) == 0 {
		a.voice.Say(a.speaker, "Not taking a turn.")
		return nil
	}

	c := game.Coordinate{Row: a.rng.Intn(game.Size), Col: a.rng.Intn(game.Size)}
	mark := game.X
	if a.rng.Intn(2) == 1 {
		mark = game.O
	}
	a.voice.Say(a.speaker, "Placing at %v as %v", c, mark)

	return &game.Move{Coordinate: c, Mark: mark}
}
