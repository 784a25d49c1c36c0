package agent

import (
	"golang.org/x/exp/rand"

	"tictactoe/commentary"
	"tictactoe/game"
)

// Random respects the rules but not strategy: it places its own mark on a
// uniformly random free cell whenever it is its turn.
type Random struct {
	mark    game.Mark
	rng     *rand.Rand
	voice   commentary.Commentator
	speaker commentary.Speaker
}

func NewRandom(mark game.Mark, opts ...Option) (*Random, error) {
	if err := checkMark(mark); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Random{
		mark:    mark,
		rng:     o.rng,
		voice:   o.voice,
		speaker: commentary.SpeakerFor(mark),
	}, nil
}

func (a *Random) Decide(board *game.Board) *game.Move {
	if mustWait(board, a.mark, a.voice) {
		return nil
	}

	free := board.FreeCells()
	c := free[a.rng.Intn(len(free))]
	a.voice.Say(a.speaker, "Placing at %v", c)

	return &game.Move{Coordinate: c, Mark: a.mark}
}
