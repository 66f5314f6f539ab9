// Package term plays the game in a terminal through tcell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleSettled = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePiece   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// Screen position of board cell (x, y). Each cell is two columns wide.
func cellPosition(t tetris.Tile) (int, int) {
	return t.X*2 + 2, t.Y + 1
}

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen

	// Resized, when set, is checked before each draw. A true result makes the
	// renderer repaint the whole terminal instead of sending a diff.
	Resized func() bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Render(s tetris.Snapshot) {
	r.screen.Clear()
	r.drawBorder()

	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			t := tetris.T(x, y)
			switch {
			case s.PieceAt(t):
				r.drawCell(t, '[', ']', stylePiece)
			case s.Board.Occupied(t):
				r.drawCell(t, '#', '#', styleSettled)
			default:
				r.drawCell(t, ' ', '.', styleEmpty)
			}
		}
	}

	if r.Resized != nil && r.Resized() {
		r.screen.Sync()
		return
	}
	r.screen.Show()
}

func (r *Renderer) drawCell(t tetris.Tile, left, right rune, style tcell.Style) {
	x, y := cellPosition(t)
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawBorder() {
	right := tetris.Width*2 + 2
	bottom := tetris.Height + 1
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '<', nil, styleBorder)
		r.screen.SetContent(1, y, '!', nil, styleBorder)
		r.screen.SetContent(right, y, '!', nil, styleBorder)
		r.screen.SetContent(right+1, y, '>', nil, styleBorder)
	}
	r.screen.SetContent(0, bottom, '<', nil, styleBorder)
	r.screen.SetContent(1, bottom, '!', nil, styleBorder)
	for x := 2; x < right; x++ {
		r.screen.SetContent(x, bottom, '=', nil, styleBorder)
	}
	r.screen.SetContent(right, bottom, '!', nil, styleBorder)
	r.screen.SetContent(right+1, bottom, '>', nil, styleBorder)
}
