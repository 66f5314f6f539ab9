package tetris

// Piece is the falling tetromino: absolute tiles, the rotation pivot, the
// rotation box size and the current rotation state (0-3).
type Piece struct {
	Kind     ShapeKind
	Tiles    [4]Tile
	Origin   Tile
	BoxSize  int
	Rotation int
}

// Spawn instantiates shape horizontally centred at the top of the board in
// rotation state 0.
func Spawn(shape Shape) Piece {
	offset := Tile{X: Width/2 - (shape.BoxSize+1)/2}
	p := Piece{
		Kind:    shape.Kind,
		Origin:  shape.Origin.Add(offset),
		BoxSize: shape.BoxSize,
	}
	for i, t := range shape.Tiles {
		p.Tiles[i] = t.Add(offset)
	}
	return p
}

// Move translates the tiles and the pivot by delta without validation.
func (p *Piece) Move(delta Tile) {
	for i := range p.Tiles {
		p.Tiles[i] = p.Tiles[i].Add(delta)
	}
	p.Origin = p.Origin.Add(delta)
}

// Moved returns a copy of p translated by delta.
func (p Piece) Moved(delta Tile) Piece {
	p.Move(delta)
	return p
}

// Rotate turns the tiles a quarter turn about the pivot inside the
// BoxSize x BoxSize square and updates the rotation state. It does not
// validate the result.
func (p *Piece) Rotate(dir Direction) {
	n := p.BoxSize - 1
	for i, t := range p.Tiles {
		d := t.Sub(p.Origin)
		if dir == Clockwise {
			d = Tile{X: n - d.Y, Y: d.X}
		} else {
			d = Tile{X: d.Y, Y: n - d.X}
		}
		p.Tiles[i] = p.Origin.Add(d)
	}
	if dir == Clockwise {
		p.Rotation = (p.Rotation + 1) % 4
	} else {
		p.Rotation = (p.Rotation + 3) % 4
	}
}

// TryRotate rotates p against board, trying the kick offsets for its box
// size when the plain rotation collides. The first valid candidate is
// committed and true returned; otherwise p is left untouched.
func (p *Piece) TryRotate(board *Board, dir Direction) bool {
	candidate := *p
	candidate.Rotate(dir)
	if board.Valid(candidate.Tiles[:]) {
		*p = candidate
		return true
	}

	tests, ok := KickTests(p.BoxSize, p.Rotation, dir)
	if !ok {
		return false
	}
	for _, offset := range tests {
		kicked := candidate.Moved(offset)
		if board.Valid(kicked.Tiles[:]) {
			*p = kicked
			return true
		}
	}
	return false
}

// TryMove translates p by delta if the result is valid on board.
func (p *Piece) TryMove(board *Board, delta Tile) bool {
	moved := p.Moved(delta)
	if !board.Valid(moved.Tiles[:]) {
		return false
	}
	*p = moved
	return true
}
