package tetris

// Clock is the time source. Instants are opaque to the engine; only the
// elapsed milliseconds between two of them matter.
type Clock[I any] interface {
	Now() I
	ElapsedMillis(from, to I) int64
}

// InputSource yields pending player commands. Poll must not block: it
// returns false when nothing is pending.
type InputSource interface {
	Poll() (Command, bool)
}

// PieceSelector picks the next shape from the catalog.
type PieceSelector interface {
	Select(catalog []Shape) Shape
}

// Renderer presents a snapshot of the game. It has no way to feed back into
// the game state.
type Renderer interface {
	Render(snapshot Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(snapshot).
func (f RendererFunc) Render(snapshot Snapshot) {
	f(snapshot)
}

// Snapshot is a read-only copy of the board and the falling piece.
type Snapshot struct {
	Board Board
	Piece Piece
}

// PieceAt reports whether the falling piece covers t.
func (s Snapshot) PieceAt(t Tile) bool {
	for _, pt := range s.Piece.Tiles {
		if pt == t {
			return true
		}
	}
	return false
}
