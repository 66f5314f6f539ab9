package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// Game runs the engine on a tcell screen.
type Game struct {
	Screen   tcell.Screen
	Selector tetris.PieceSelector
	Keys     KeyMap
	Interval time.Duration
	Logger   zerolog.Logger
}

// Play runs games until the player exits or ctx is done. A lost game is
// followed by a new one. The screen must already be initialized.
func (g *Game) Play(ctx context.Context) (tetris.Totals, error) {
	if g.Keys.Keys == nil {
		g.Keys = DefaultKeyMap()
	}
	interval := g.Interval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}

	input := NewInput(g.Screen, g.Keys)
	renderer := NewRenderer(g.Screen)
	renderer.Resized = input.Resized
	engine := tetris.NewEngine[time.Time](tetris.SystemClock{}, input, g.Selector, renderer,
		tetris.WithLogger(g.Logger))

	for {
		switch engine.Run(ctx, interval) {
		case tetris.Lost:
			totals := engine.Totals()
			g.Logger.Info().
				Int("game", totals.Games).
				Int64("pieces", totals.Pieces).
				Int64("lines", totals.Lines).
				Msg("game lost, restarting")
			input.Drain()
			engine.Reset()
		case tetris.Quit:
			g.Logger.Info().Msg("player quit")
			return engine.Totals(), nil
		default:
			return engine.Totals(), ctx.Err()
		}
	}
}
