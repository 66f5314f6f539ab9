package tetris

const (
	// Width is the number of board columns.
	Width = 10
	// Height is the number of board rows. Row 0 is the top.
	Height = 20
)

// Board is the grid of settled cells, indexed [x][y].
type Board struct {
	cells [Width][Height]bool
}

// Occupied reports whether the cell at t is settled. t must be in bounds.
func (b Board) Occupied(t Tile) bool {
	return b.cells[t.X][t.Y]
}

// Settle marks every tile as occupied. The tiles must already be valid.
func (b *Board) Settle(tiles []Tile) {
	for _, t := range tiles {
		b.cells[t.X][t.Y] = true
	}
}

// Valid reports whether every tile is on the board and unoccupied.
func (b Board) Valid(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.InBounds() || b.cells[t.X][t.Y] {
			return false
		}
	}
	return true
}

// RowComplete reports whether every cell of row y is occupied.
func (b Board) RowComplete(y int) bool {
	for x := 0; x < Width; x++ {
		if !b.cells[x][y] {
			return false
		}
	}
	return true
}

// RowCount returns the number of occupied cells in row y.
func (b Board) RowCount(y int) int {
	n := 0
	for x := 0; x < Width; x++ {
		if b.cells[x][y] {
			n++
		}
	}
	return n
}

// ClearCompletedRows removes every complete row and lets the rows above it
// fall into its place. Rows are scanned from the top so that each shift
// already reflects the clears made above it. It returns the number of rows
// removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if b.RowComplete(y) {
			b.collapseRow(y)
			cleared++
		}
	}
	return cleared
}

// collapseRow copies every row above y down by one and empties row 0.
func (b *Board) collapseRow(y int) {
	for row := y; row > 0; row-- {
		for x := 0; x < Width; x++ {
			b.cells[x][row] = b.cells[x][row-1]
		}
	}
	for x := 0; x < Width; x++ {
		b.cells[x][0] = false
	}
}

// SetRow overwrites row y from a pattern where '#' marks a settled cell and
// any other byte an empty one. Columns past the pattern are left empty.
func (b *Board) SetRow(y int, pattern string) {
	for x := 0; x < Width; x++ {
		b.cells[x][y] = x < len(pattern) && pattern[x] == '#'
	}
}

// Row renders row y using '#' for settled cells and '.' for empty ones.
func (b Board) Row(y int) string {
	var buf [Width]byte
	for x := 0; x < Width; x++ {
		if b.cells[x][y] {
			buf[x] = '#'
		} else {
			buf[x] = '.'
		}
	}
	return string(buf[:])
}

// Filled returns the number of settled cells on the board.
func (b Board) Filled() int {
	n := 0
	for y := 0; y < Height; y++ {
		n += b.RowCount(y)
	}
	return n
}
