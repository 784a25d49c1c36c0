// Package agent holds the decision-making players. Every agent is stateless
// between calls: it re-derives whose turn it is from the board contents, so
// it can be polled on every step without tracking game history.
package agent

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"tictactoe/commentary"
	"tictactoe/game"
)

// Agent proposes a move for the current board, or declines by returning nil.
type Agent interface {
	Decide(board *game.Board) *game.Move
}

type Option func(*options)

type options struct {
	rng   *rand.Rand
	voice commentary.Commentator
}

// WithRand sets the randomness source, letting callers seed agents for
// reproducible campaigns.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithCommentary sets the transcript collaborator.
func WithCommentary(voice commentary.Commentator) Option {
	return func(o *options) {
		o.voice = voice
	}
}

func newOptions(opts []Option) options {
	o := options{
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		voice: commentary.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func checkMark(mark game.Mark) error {
	if mark != game.X && mark != game.O {
		return fmt.Errorf("%w: %d", game.ErrInvalidMark, mark)
	}
	return nil
}

// mustWait reports whether an agent has to decline this step: the game is
// already decided, the board is full, or it is the opponent's turn. Each
// branch narrates its reason.
func mustWait(board *game.Board, mark game.Mark, voice commentary.Commentator) bool {
	speaker := commentary.SpeakerFor(mark)

	switch board.Winner() {
	case mark:
		voice.Say(speaker, "I won!")
		return true
	case mark.Other():
		voice.Say(speaker, "I lost!")
		return true
	}

	if board.Full() {
		voice.Say(speaker, "Draw!")
		return true
	}

	if next := board.Turn(); next != mark {
		voice.Say(speaker, "Not my turn, %v is next.", next)
		return true
	}

	return false
}
