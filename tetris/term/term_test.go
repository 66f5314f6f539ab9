package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(30, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func contentAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	runes := cells[y*width+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestCellPosition(t *testing.T) {
	x, y := cellPosition(tetris.T(0, 0))
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	x, y = cellPosition(tetris.T(9, 19))
	assert.Equal(t, 20, x)
	assert.Equal(t, 20, y)
}

func TestRenderer(t *testing.T) {
	screen := newScreen(t)

	var board tetris.Board
	board.SetRow(19, "#.........")
	NewRenderer(screen).Render(tetris.Snapshot{
		Board: board,
		Piece: tetris.Spawn(tetris.ShapeOf(tetris.ShapeO)),
	})

	assert.Equal(t, '[', contentAt(screen, 10, 1))
	assert.Equal(t, ']', contentAt(screen, 11, 1))
	assert.Equal(t, '#', contentAt(screen, 2, 20))
	assert.Equal(t, '.', contentAt(screen, 5, 20))
	assert.Equal(t, '!', contentAt(screen, 1, 5))
	assert.Equal(t, '!', contentAt(screen, 22, 5))
	assert.Equal(t, '=', contentAt(screen, 2, 21))
}

func TestInput(t *testing.T) {
	screen := newScreen(t)
	input := NewInput(screen, DefaultKeyMap())

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)

	var got []tetris.Command
	require.Eventually(t, func() bool {
		if cmd, ok := input.Poll(); ok {
			got = append(got, cmd)
		}
		return len(got) == 2
	}, time.Second, time.Millisecond)

	assert.Equal(t, []tetris.Command{tetris.MoveLeft, tetris.RotateCounterClockwise}, got)
	_, ok := input.Poll()
	assert.False(t, ok)
}

func TestPlayQuits(t *testing.T) {
	screen := newScreen(t)
	game := &Game{
		Screen:   screen,
		Selector: tetris.NewSequenceSelector(tetris.ShapeO),
		Interval: time.Millisecond,
		Logger:   zerolog.Nop(),
	}

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	totals, err := game.Play(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, totals.Games)
}

func TestPlayStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	game := &Game{
		Screen:   screen,
		Selector: tetris.NewSequenceSelector(tetris.ShapeO),
		Interval: time.Millisecond,
		Logger:   zerolog.Nop(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := game.Play(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, '[', contentAt(screen, 10, 1))
}

func TestResizeRepaints(t *testing.T) {
	screen := newScreen(t)
	input := NewInput(screen, DefaultKeyMap())

	require.NoError(t, screen.PostEvent(tcell.NewEventResize(40, 30)))
	require.Eventually(t, input.Resized, time.Second, time.Millisecond)
	assert.False(t, input.Resized())

	var checks int
	renderer := NewRenderer(screen)
	renderer.Resized = func() bool {
		checks++
		return checks == 1
	}
	snapshot := tetris.Snapshot{Piece: tetris.Spawn(tetris.ShapeOf(tetris.ShapeO))}

	renderer.Render(snapshot)
	assert.Equal(t, '[', contentAt(screen, 10, 1))
	renderer.Render(snapshot)
	assert.Equal(t, 2, checks)
	assert.Equal(t, '[', contentAt(screen, 10, 1))
}
