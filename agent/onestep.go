package agent

import (
	"golang.org/x/exp/rand"

	"tictactoe/commentary"
	"tictactoe/game"
)

// OneStepAhead looks a single ply ahead: it takes an immediate win if one
// exists, otherwise blocks the opponent's immediate win, otherwise places
// randomly. All hypothetical placements happen on a private board copy.
type OneStepAhead struct {
	mark    game.Mark
	rng     *rand.Rand
	voice   commentary.Commentator
	speaker commentary.Speaker
}

func NewOneStepAhead(mark game.Mark, opts ...Option) (*OneStepAhead, error) {
	if err := checkMark(mark); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &OneStepAhead{
		mark:    mark,
		rng:     o.rng,
		voice:   o.voice,
		speaker: commentary.SpeakerFor(mark),
	}, nil
}

func (a *OneStepAhead) Decide(board *game.Board) *game.Move {
	if mustWait(board, a.mark, a.voice) {
		return nil
	}

	free := board.FreeCells()
	scratch := board.Copy()

	// Imagine my own moves.
	for _, c := range free {
		scratch.Place(c, a.mark)
		if scratch.Winner() == a.mark {
			a.voice.Say(a.speaker, "I can win by placing at %v, so I'm going to place there.", c)
			return &game.Move{Coordinate: c, Mark: a.mark}
		}
		scratch.Place(c, game.Empty)
	}

	// Imagine the other player's moves.
	other := a.mark.Other()
	for _, c := range free {
		scratch.Place(c, other)
		if scratch.Winner() == other {
			a.voice.Say(a.speaker, "Other player can win by placing at %v, so I'm going to place there.", c)
			return &game.Move{Coordinate: c, Mark: a.mark}
		}
		scratch.Place(c, game.Empty)
	}

	c := free[a.rng.Intn(len(free))]
	a.voice.Say(a.speaker, "Randomly placing at %v", c)

	return &game.Move{Coordinate: c, Mark: a.mark}
}
