package tetris

import (
	"fmt"
	"strings"
)

// ShapeKind identifies one of the seven tetrominoes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeZ
	ShapeT
)

var shapeNames = [...]string{"I", "J", "L", "O", "S", "Z", "T"}

func (k ShapeKind) String() string {
	if k < 0 || int(k) >= len(shapeNames) {
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
	return shapeNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(shapeNames) {
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
	return []byte(shapeNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are the single
// letters I, J, L, O, S, Z and T, case-insensitive.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	kind, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseShapeKind converts a shape letter into its ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	for i, name := range shapeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Shape is an immutable catalog entry: four cell offsets, the rotation pivot
// and the side of the square the piece rotates within.
type Shape struct {
	Kind    ShapeKind
	Tiles   [4]Tile
	Origin  Tile
	BoxSize int
}

var catalog = [7]Shape{
	{Kind: ShapeI, Tiles: [4]Tile{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Origin: Tile{0, -1}, BoxSize: 4},
	{Kind: ShapeJ, Tiles: [4]Tile{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Origin: Tile{0, 0}, BoxSize: 3},
	{Kind: ShapeL, Tiles: [4]Tile{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, Origin: Tile{0, 0}, BoxSize: 3},
	{Kind: ShapeO, Tiles: [4]Tile{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Origin: Tile{0, 0}, BoxSize: 2},
	{Kind: ShapeS, Tiles: [4]Tile{{0, 1}, {1, 1}, {1, 0}, {2, 0}}, Origin: Tile{0, 0}, BoxSize: 3},
	{Kind: ShapeZ, Tiles: [4]Tile{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Origin: Tile{0, 0}, BoxSize: 3},
	{Kind: ShapeT, Tiles: [4]Tile{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, Origin: Tile{0, 0}, BoxSize: 3},
}

// Catalog returns the seven shapes, indexed by ShapeKind.
func Catalog() []Shape {
	shapes := make([]Shape, len(catalog))
	copy(shapes, catalog[:])
	return shapes
}

// ShapeOf returns the catalog entry for kind.
func ShapeOf(kind ShapeKind) Shape {
	return catalog[kind]
}

// Direction is a quarter-turn direction.
type Direction int

const (
	Clockwise        Direction = 0
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// Kick tables use board coordinates (y down). Row r*2+d holds the trial
// offsets for leaving rotation state r in direction d.
var size3KickTests = [8][4]Tile{
	{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 0 -> 1
	{{1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 0 -> 3
	{{1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1 -> 2
	{{1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1 -> 0
	{{1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 2 -> 3
	{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 2 -> 1
	{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3 -> 0
	{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3 -> 2
}

var size4KickTests = [8][4]Tile{
	{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 0 -> 1
	{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 0 -> 3
	{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 1 -> 2
	{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 1 -> 0
	{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 2 -> 3
	{{1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 2 -> 1
	{{1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 3 -> 0
	{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 3 -> 2
}

// KickTests returns the ordered trial offsets for rotating a piece with the
// given box size out of rotation state rotation. The second result is false
// for box sizes without a table (the O piece).
func KickTests(boxSize, rotation int, dir Direction) ([4]Tile, bool) {
	row := (rotation%4)*2 + int(dir)
	switch boxSize {
	case 3:
		return size3KickTests[row], true
	case 4:
		return size4KickTests[row], true
	}
	return [4]Tile{}, false
}
