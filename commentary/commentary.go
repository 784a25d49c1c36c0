// Package commentary carries the debug transcript of a game: every agent and
// referee decision branch narrates its reasoning through a Commentator, and
// the engine shows the board through the same channel. None of it affects
// play; the default Commentator discards everything.
package commentary

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"tictactoe/game"
)

// Speaker identifies who is talking in a transcript. It is deliberately a
// separate type from game.Mark: the referee speaks but never places a mark.
type Speaker int

const (
	SpeakerX Speaker = iota
	SpeakerO
	SpeakerReferee
)

func (s Speaker) String() string {
	switch s {
	case SpeakerX:
		return "X"
	case SpeakerO:
		return "O"
	default:
		return "R"
	}
}

// SpeakerFor returns the speaker identity of the player holding mark.
func SpeakerFor(mark game.Mark) Speaker {
	if mark == game.O {
		return SpeakerO
	}
	return SpeakerX
}

// Commentator receives speaker-attributed narration and board snapshots.
type Commentator interface {
	Say(speaker Speaker, format string, args ...any)
	ShowBoard(board *game.Board)
}

type nop struct{}

// Nop returns a Commentator that discards everything.
func Nop() Commentator {
	return nop{}
}

func (nop) Say(Speaker, string, ...any) {}
func (nop) ShowBoard(*game.Board)       {}

type console struct {
	log     zerolog.Logger
	out     io.Writer
	profile termenv.Profile
}

// NewConsole returns a Commentator that writes narration through logger at
// debug level and renders boards to out, colored when out supports it.
func NewConsole(logger zerolog.Logger, out io.Writer) Commentator {
	return &console{
		log:     logger,
		out:     out,
		profile: termenv.NewOutput(out).Profile,
	}
}

func (c *console) Say(speaker Speaker, format string, args ...any) {
	c.log.Debug().Str("speaker", speaker.String()).Msgf(format, args...)
}

func (c *console) ShowBoard(board *game.Board) {
	fmt.Fprintf(c.out, "\n%s\n", Render(board, c.profile))
}
