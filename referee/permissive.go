package referee

import (
	"tictactoe/commentary"
	"tictactoe/game"
)

// Permissive ignores legality entirely: it only recognizes a completed line
// or a full board. Paired with a lawless agent it lets any move stand, which
// is useful for watching agent behavior without rule enforcement.
type Permissive struct {
	voice commentary.Commentator
}

func NewPermissive(opts ...Option) *Permissive {
	o := newOptions(opts)
	return &Permissive{voice: o.voice}
}

func (r *Permissive) Adjudicate(board *game.Board, xMove, oMove *game.Move) (game.Outcome, bool) {
	switch board.Winner() {
	case game.X:
		r.voice.Say(commentary.SpeakerReferee, "X wins!")
		return game.XWins, true
	case game.O:
		r.voice.Say(commentary.SpeakerReferee, "O wins!")
		return game.OWins, true
	}

	if board.Full() {
		r.voice.Say(commentary.SpeakerReferee, "Draw!")
		return game.Draw, true
	}

	return 0, false
}
