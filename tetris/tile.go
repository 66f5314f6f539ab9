package tetris

import "fmt"

// Tile is an integer board coordinate. X grows to the right and Y grows
// downwards, so row 0 is the top of the board.
type Tile struct {
	X, Y int
}

// T is shorthand for building a Tile.
func T(x, y int) Tile {
	return Tile{X: x, Y: y}
}

// Add returns the component-wise sum of t and o.
func (t Tile) Add(o Tile) Tile {
	return Tile{X: t.X + o.X, Y: t.Y + o.Y}
}

// Sub returns the component-wise difference of t and o.
func (t Tile) Sub(o Tile) Tile {
	return Tile{X: t.X - o.X, Y: t.Y - o.Y}
}

// InBounds reports whether t lies on a Width x Height board.
func (t Tile) InBounds() bool {
	return t.X >= 0 && t.X < Width && t.Y >= 0 && t.Y < Height
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}
