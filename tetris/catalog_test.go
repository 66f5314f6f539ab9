package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	shapes := tetris.Catalog()
	require.Len(t, shapes, 7)

	for i, shape := range shapes {
		assert.Equal(t, tetris.ShapeKind(i), shape.Kind)
		for _, tile := range shape.Tiles {
			assert.GreaterOrEqual(t, tile.X, 0, "%s tile %v", shape.Kind, tile)
			assert.Less(t, tile.X, shape.BoxSize, "%s tile %v", shape.Kind, tile)
		}
	}

	assert.Equal(t, 4, tetris.ShapeOf(tetris.ShapeI).BoxSize)
	assert.Equal(t, 2, tetris.ShapeOf(tetris.ShapeO).BoxSize)
	for _, kind := range []tetris.ShapeKind{tetris.ShapeJ, tetris.ShapeL, tetris.ShapeS, tetris.ShapeZ, tetris.ShapeT} {
		assert.Equal(t, 3, tetris.ShapeOf(kind).BoxSize, kind.String())
	}
}

func TestCatalogIsACopy(t *testing.T) {
	shapes := tetris.Catalog()
	shapes[0].BoxSize = 99

	assert.Equal(t, 4, tetris.Catalog()[0].BoxSize)
}

func TestKickTests(t *testing.T) {
	t.Run("size 2 has no table", func(t *testing.T) {
		_, ok := tetris.KickTests(2, 0, tetris.Clockwise)
		assert.False(t, ok)
	})

	t.Run("size 3 leaving state 0", func(t *testing.T) {
		cw, ok := tetris.KickTests(3, 0, tetris.Clockwise)
		require.True(t, ok)
		assert.Equal(t, [4]tetris.Tile{{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}}, cw)

		ccw, ok := tetris.KickTests(3, 0, tetris.CounterClockwise)
		require.True(t, ok)
		assert.Equal(t, [4]tetris.Tile{{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}}, ccw)
	})

	t.Run("opposite transitions mirror each other", func(t *testing.T) {
		// Leaving r clockwise and leaving r+1 counterclockwise undo each other.
		for _, size := range []int{3, 4} {
			for r := 0; r < 4; r++ {
				there, _ := tetris.KickTests(size, r, tetris.Clockwise)
				back, _ := tetris.KickTests(size, (r+1)%4, tetris.CounterClockwise)
				for i := range there {
					assert.Equal(t, tetris.T(0, 0), there[i].Add(back[i]), "size %d state %d test %d", size, r, i)
				}
			}
		}
	})
}

func TestParseShapeKind(t *testing.T) {
	kind, err := tetris.ParseShapeKind("t")
	require.NoError(t, err)
	assert.Equal(t, tetris.ShapeT, kind)

	_, err = tetris.ParseShapeKind("X")
	assert.Error(t, err)

	var k tetris.ShapeKind
	require.NoError(t, k.UnmarshalText([]byte("S")))
	assert.Equal(t, tetris.ShapeS, k)

	text, err := tetris.ShapeZ.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Z", string(text))
}
