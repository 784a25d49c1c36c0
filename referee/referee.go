// Package referee holds the rules-enforcement side of a game. A referee sees
// the board and both proposed moves before anything is applied and rules on
// whether the game ends this step.
package referee

import (
	"tictactoe/commentary"
	"tictactoe/game"
)

// Referee adjudicates one polling round. The returned bool reports whether
// the game concluded; false means play continues and the moves may be
// applied.
type Referee interface {
	Adjudicate(board *game.Board, xMove, oMove *game.Move) (game.Outcome, bool)
}

type Option func(*options)

type options struct {
	voice commentary.Commentator
}

// WithCommentary sets the transcript collaborator.
func WithCommentary(voice commentary.Commentator) Option {
	return func(o *options) {
		o.voice = voice
	}
}

func newOptions(opts []Option) options {
	o := options{voice: commentary.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
