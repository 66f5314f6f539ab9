package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const boardMargin = 20

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	settledColor    = color.RGBA{200, 70, 70, 255}
)

// shapeColors is indexed by tetris.ShapeKind.
var shapeColors = [...]color.RGBA{
	{0, 240, 240, 255},
	{0, 0, 240, 255},
	{240, 160, 0, 255},
	{240, 240, 0, 255},
	{0, 240, 0, 255},
	{240, 0, 0, 255},
	{160, 0, 240, 255},
}

// Renderer keeps the latest snapshot and draws it on demand. ebiten calls
// Draw separately from Update, so rendering is split in two.
type Renderer struct {
	CellSize int
	snapshot tetris.Snapshot
	frames   int64
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{CellSize: cellSize}
}

func (r *Renderer) Render(snapshot tetris.Snapshot) {
	r.snapshot = snapshot
	r.frames++
}

// Snapshot returns the last rendered snapshot and the number of renders.
func (r *Renderer) Snapshot() (tetris.Snapshot, int64) {
	return r.snapshot, r.frames
}

// ScreenSize is the window size needed to show the whole board.
func (r *Renderer) ScreenSize() (int, int) {
	return tetris.Width*r.CellSize + 2*boardMargin, tetris.Height*r.CellSize + 2*boardMargin
}

// cellRect returns the screen rectangle of a board cell.
func (r *Renderer) cellRect(t tetris.Tile) (x, y, size float32) {
	size = float32(r.CellSize)
	return boardMargin + float32(t.X)*size, boardMargin + float32(t.Y)*size, size
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w := float32(tetris.Width * r.CellSize)
	h := float32(tetris.Height * r.CellSize)
	vector.StrokeRect(screen, boardMargin-2, boardMargin-2, w+4, h+4, 2, borderColor, false)

	s := r.snapshot
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			t := tetris.T(x, y)
			cx, cy, size := r.cellRect(t)
			switch {
			case s.PieceAt(t):
				vector.DrawFilledRect(screen, cx, cy, size, size, shapeColors[s.Piece.Kind], false)
			case s.Board.Occupied(t):
				vector.DrawFilledRect(screen, cx, cy, size, size, settledColor, false)
			default:
				vector.StrokeRect(screen, cx, cy, size, size, 1, gridColor, false)
				continue
			}
			vector.StrokeRect(screen, cx, cy, size, size, 1, color.Black, false)
		}
	}
}
