package referee

import (
	"tictactoe/commentary"
	"tictactoe/game"
)

// Strict enforces the rules. Its checks run in a fixed priority order and
// the first match ends the game: wrong mark, occupied cell, out of turn (X
// before O in each pair), then wins, draw, and finally a skipped turn. When
// nothing matches the game silently continues.
type Strict struct {
	voice commentary.Commentator
}

func NewStrict(opts ...Option) *Strict {
	o := newOptions(opts)
	return &Strict{voice: o.voice}
}

func (r *Strict) Adjudicate(board *game.Board, xMove, oMove *game.Move) (game.Outcome, bool) {
	if xMove != nil && xMove.Mark != game.X {
		r.voice.Say(commentary.SpeakerReferee, "X didn't put down the correct symbol. Penalty X.")
		return game.XPenalty, true
	}
	if oMove != nil && oMove.Mark != game.O {
		r.voice.Say(commentary.SpeakerReferee, "O didn't put down the correct symbol. Penalty O.")
		return game.OPenalty, true
	}

	if xMove != nil && board.At(xMove.Coordinate) != game.Empty {
		r.voice.Say(commentary.SpeakerReferee, "X moved on top of another piece. Penalty X.")
		return game.XPenalty, true
	}
	if oMove != nil && board.At(oMove.Coordinate) != game.Empty {
		r.voice.Say(commentary.SpeakerReferee, "O moved on top of another piece. Penalty O.")
		return game.OPenalty, true
	}

	turn := board.Turn()
	if xMove != nil && turn == game.O {
		r.voice.Say(commentary.SpeakerReferee, "Not X's turn. Penalty X.")
		return game.XPenalty, true
	}
	if oMove != nil && turn == game.X {
		r.voice.Say(commentary.SpeakerReferee, "Not O's turn. Penalty O.")
		return game.OPenalty, true
	}

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

	if xMove == nil && turn == game.X {
		r.voice.Say(commentary.SpeakerReferee, "X's turn but didn't go. Penalty X.")
		return game.XPenalty, true
	}
	if oMove == nil && turn == game.O {
		r.voice.Say(commentary.SpeakerReferee, "O's turn but didn't go. Penalty O.")
		return game.OPenalty, true
	}

	return 0, false
}
