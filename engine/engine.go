// Package engine drives a single game to its conclusion.
package engine

import (
	"errors"

	"github.com/rs/zerolog/log"

	"tictactoe/agent"
	"tictactoe/commentary"
	"tictactoe/game"
	"tictactoe/referee"
)

// MaxSteps caps a single game to defend against matchups that never
// conclude. The strict referee ends any game within 9 real placements, but a
// lawless agent under the permissive referee has no such guarantee.
const MaxSteps = 10000

var ErrNoConclusion = errors.New("game reached the step cap without a conclusion")

// Engine owns one game's board and runs the polling loop: each step both
// agents are asked for a move against the same pre-step board, the referee
// rules, and surviving moves are applied.
type Engine struct {
	board *game.Board
	x, o  agent.Agent
	ref   referee.Referee
	voice commentary.Commentator
}

type Option func(*Engine)

// WithCommentary sets the transcript collaborator.
func WithCommentary(voice commentary.Commentator) Option {
	return func(e *Engine) {
		e.voice = voice
	}
}

// New creates an engine with a fresh, empty board.
func New(x, o agent.Agent, ref referee.Referee, opts ...Option) *Engine {
	e := &Engine{
		board: game.NewBoard(),
		x:     x,
		o:     o,
		ref:   ref,
		voice: commentary.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board exposes the live board, read-only by convention.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Step runs one polling round and reports whether the game concluded. When
// the referee rules, the moves proposed this step are discarded; otherwise
// X's move is applied first, then O's, so on a collision the later write
// wins.
func (e *Engine) Step() (game.Outcome, bool) {
	xMove := e.x.Decide(e.board)
	oMove := e.o.Decide(e.board)

	if outcome, done := e.ref.Adjudicate(e.board, xMove, oMove); done {
		return outcome, true
	}

	if xMove != nil {
		e.board.Place(xMove.Coordinate, xMove.Mark)
	}
	if oMove != nil {
		e.board.Place(oMove.Coordinate, oMove.Mark)
	}

	return 0, false
}

// Run loops Step until the referee concludes the game, returning the outcome
// and the number of steps taken. Exceeding MaxSteps is an error, not an
// outcome.
func (e *Engine) Run() (game.Outcome, int, error) {
	for step := 1; step <= MaxSteps; step++ {
		e.voice.ShowBoard(e.board)
		if outcome, done := e.Step(); done {
			e.voice.ShowBoard(e.board)
			log.Debug().Msgf("game concluded after %d steps: %s", step, outcome)
			return outcome, step, nil
		}
	}
	return 0, MaxSteps, ErrNoConclusion
}
