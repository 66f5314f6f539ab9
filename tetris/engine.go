// Package tetris implements the rules of a falling-block puzzle on a 10x20
// board: piece movement, rotation with wall kicks, gravity, row clearing and
// game-over detection, driven one frame at a time.
package tetris

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GravityIntervalMillis is how long a piece rests before gravity pulls it
// down one row.
const GravityIntervalMillis = 1000

// Totals accumulates counters over the engine lifetime.
type Totals struct {
	Games  int
	Pieces int64
	Lines  int64
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	board  Board
}

// WithLogger routes engine events to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBoard starts every game from board instead of an empty one.
func WithBoard(board Board) Option {
	return func(o *options) {
		o.board = board
	}
}

// Engine owns the board and the falling piece and advances them one frame
// at a time. I is the clock's instant type.
type Engine[I any] struct {
	board Board
	piece Piece

	clock    Clock[I]
	input    InputSource
	selector PieceSelector
	renderer Renderer

	lastMove  I
	outcome   Outcome
	initial   Board
	totals    Totals
	scheduler *Scheduler
	log       zerolog.Logger
}

// NewEngine creates an engine and spawns the first piece. If that piece
// cannot be placed the engine starts in the Lost state.
func NewEngine[I any](clock Clock[I], input InputSource, selector PieceSelector, renderer Renderer, opts ...Option) *Engine[I] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine[I]{
		clock:     clock,
		input:     input,
		selector:  selector,
		renderer:  renderer,
		initial:   o.board,
		scheduler: NewScheduler(),
		log:       o.logger,
	}

	e.scheduler.Register(&inputSystem[I]{engine: e})
	e.scheduler.Register(&gravitySystem[I]{engine: e})
	e.scheduler.Register(&renderSystem[I]{engine: e})

	e.Reset()
	return e
}

// Reset starts a new game on the initial board.
func (e *Engine[I]) Reset() {
	e.board = e.initial
	e.outcome = Continue
	e.totals.Games++

	if !e.spawn() {
		e.outcome = Lost
		e.log.Debug().Stringer("piece", e.piece.Kind).Msg("spawn blocked on new game")
	}
	e.lastMove = e.clock.Now()
}

// Frame runs one engine step and returns its outcome.
func (e *Engine[I]) Frame() Outcome {
	return e.Step().Outcome
}

// Step runs one engine step and returns the full frame record. Once the
// game has ended it returns the terminal outcome without touching state.
func (e *Engine[I]) Step() *Frame {
	if e.outcome.Terminal() {
		return &Frame{Outcome: e.outcome}
	}
	return e.scheduler.Once()
}

// Run steps the engine every interval until ctx is done or the game ends.
func (e *Engine[I]) Run(ctx context.Context, interval time.Duration) Outcome {
	if e.outcome.Terminal() {
		return e.outcome
	}
	return e.scheduler.Run(ctx, interval)
}

// Outcome returns the outcome of the most recent frame.
func (e *Engine[I]) Outcome() Outcome {
	return e.outcome
}

// Snapshot copies the board and the falling piece.
func (e *Engine[I]) Snapshot() Snapshot {
	return Snapshot{Board: e.board, Piece: e.piece}
}

// Stats returns per-system execution statistics.
func (e *Engine[I]) Stats() *SchedulerStats {
	return e.scheduler.Stats()
}

// Totals returns lifetime counters.
func (e *Engine[I]) Totals() Totals {
	return e.totals
}

func (e *Engine[I]) spawn() bool {
	e.piece = Spawn(e.selector.Select(Catalog()))
	return e.board.Valid(e.piece.Tiles[:])
}

func (e *Engine[I]) end(frame *Frame, outcome Outcome) {
	frame.Outcome = outcome
	e.outcome = outcome
}

func (e *Engine[I]) shift(frame *Frame, delta Tile) {
	if e.piece.TryMove(&e.board, delta) {
		frame.Applied++
		return
	}
	frame.Rejected++
}

func (e *Engine[I]) rotate(frame *Frame, dir Direction) {
	if e.piece.TryRotate(&e.board, dir) {
		frame.Applied++
		return
	}
	frame.Rejected++
}

// fall moves the piece down one row, or locks it, clears rows and spawns
// the next piece when it has landed.
func (e *Engine[I]) fall(frame *Frame) {
	if e.piece.TryMove(&e.board, Tile{Y: 1}) {
		frame.Drops++
		e.lastMove = e.clock.Now()
		return
	}

	e.board.Settle(e.piece.Tiles[:])
	frame.Locked = true
	e.totals.Pieces++

	cleared := e.board.ClearCompletedRows()
	frame.Cleared += cleared
	e.totals.Lines += int64(cleared)

	e.log.Debug().
		Stringer("piece", e.piece.Kind).
		Int("rotation", e.piece.Rotation).
		Int("cleared", cleared).
		Msg("piece locked")

	if !e.spawn() {
		e.end(frame, Lost)
		e.log.Info().
			Int64("pieces", e.totals.Pieces).
			Int64("lines", e.totals.Lines).
			Msg("game over")
		return
	}
	e.lastMove = e.clock.Now()
}

// inputSystem drains every pending command before gravity is evaluated.
type inputSystem[I any] struct {
	engine *Engine[I]
}

func (s *inputSystem[I]) Execute(frame *Frame) {
	e := s.engine
	for {
		cmd, ok := e.input.Poll()
		if !ok {
			return
		}

		switch cmd {
		case MoveLeft:
			e.shift(frame, Tile{X: -1})
		case MoveRight:
			e.shift(frame, Tile{X: 1})
		case MoveDown:
			frame.Applied++
			e.fall(frame)
		case RotateClockwise:
			e.rotate(frame, Clockwise)
		case RotateCounterClockwise:
			e.rotate(frame, CounterClockwise)
		case ExitGame:
			e.end(frame, Quit)
			e.log.Debug().Msg("exit requested")
		}

		if frame.Outcome.Terminal() {
			return
		}
	}
}

// gravitySystem pulls the piece down once the gravity interval has passed
// since it last moved down.
type gravitySystem[I any] struct {
	engine *Engine[I]
}

func (s *gravitySystem[I]) Execute(frame *Frame) {
	e := s.engine
	if e.clock.ElapsedMillis(e.lastMove, e.clock.Now()) > GravityIntervalMillis {
		e.fall(frame)
	}
}

type renderSystem[I any] struct {
	engine *Engine[I]
}

func (s *renderSystem[I]) Execute(frame *Frame) {
	if s.engine.renderer != nil {
		s.engine.renderer.Render(s.engine.Snapshot())
	}
}
