package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"tictactoe/commentary"
	"tictactoe/game"
)

// Minimax evaluates every free cell by exhaustive game-tree search with both
// sides playing optimally, then places on a uniformly random cell among those
// tied at the best score. It never loses, and two Minimax agents always draw.
type Minimax struct {
	mark    game.Mark
	rng     *rand.Rand
	voice   commentary.Commentator
	speaker commentary.Speaker
}

func NewMinimax(mark game.Mark, opts ...Option) (*Minimax, error) {
	if err := checkMark(mark); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Minimax{
		mark:    mark,
		rng:     o.rng,
		voice:   o.voice,
		speaker: commentary.SpeakerFor(mark),
	}, nil
}

func (a *Minimax) Decide(board *game.Board) *game.Move {
	if mustWait(board, a.mark, a.voice) {
		return nil
	}

	values := positionValues(board.Copy(), a.mark)

	best := math.MinInt
	var bestCells []game.Coordinate
	for _, c := range board.FreeCells() {
		switch v := values[c]; {
		case v > best:
			best = v
			bestCells = append(bestCells[:0], c)
		case v == best:
			bestCells = append(bestCells, c)
		}
	}

	c := bestCells[a.rng.Intn(len(bestCells))]
	a.voice.Say(a.speaker, "I'm going to place at a random highest value position: %v", c)

	return &game.Move{Coordinate: c, Mark: a.mark}
}

// positionValues scores every free cell for the side holding mark: +1 for an
// immediate win, 0 for a draw, otherwise the negation of the opponent's best
// reply from the resulting position. The search recomputes shared subtrees
// on every call; bounded by 9 cells that stays fast enough not to memoize.
func positionValues(scratch *game.Board, mark game.Mark) map[game.Coordinate]int {
	values := make(map[game.Coordinate]int)
	for _, c := range scratch.FreeCells() {
		scratch.Place(c, mark)
		switch {
		case scratch.Winner() == mark:
			values[c] = 1
		case scratch.Full():
			values[c] = 0
		default:
			values[c] = -bestValue(positionValues(scratch, mark.Other()))
		}
		scratch.Place(c, game.Empty)
	}
	return values
}

func bestValue(values map[game.Coordinate]int) int {
	best := math.MinInt
	for _, v := range values {
		if v > best {
			best = v
		}
	}
	return best
}
