package tetris

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	emptyCell   = '.'
	settledCell = '#'
	pieceCell   = '@'
)

// TextRenderer draws snapshots as ASCII, one character per cell, with an
// optional ANSI colouring of settled cells and the falling piece.
type TextRenderer struct {
	W     io.Writer
	Color bool
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, colored bool) *TextRenderer {
	return &TextRenderer{W: w, Color: colored}
}

// Render writes the formatted snapshot to the underlying writer.
func (r *TextRenderer) Render(s Snapshot) {
	_, _ = io.WriteString(r.W, r.Format(s))
}

// Format returns the snapshot drawn inside a frame.
func (r *TextRenderer) Format(s Snapshot) string {
	settled := color.New(color.FgRed)
	piece := color.New(color.FgCyan, color.Bold)
	if r.Color {
		settled.EnableColor()
		piece.EnableColor()
	} else {
		settled.DisableColor()
		piece.DisableColor()
	}

	var sb strings.Builder
	for y := 0; y < Height; y++ {
		sb.WriteByte('|')
		for x := 0; x < Width; x++ {
			t := Tile{X: x, Y: y}
			switch {
			case s.PieceAt(t):
				sb.WriteString(piece.Sprint(string(pieceCell)))
			case s.Board.Occupied(t):
				sb.WriteString(settled.Sprint(string(settledCell)))
			default:
				sb.WriteByte(emptyCell)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte('+')
	sb.WriteString(strings.Repeat("-", Width))
	sb.WriteString("+\n")
	return sb.String()
}

func (s Snapshot) String() string {
	return (&TextRenderer{}).Format(s)
}
