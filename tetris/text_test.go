package tetris_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer(t *testing.T) {
	var board tetris.Board
	board.SetRow(19, "##........")
	piece := tetris.Spawn(tetris.ShapeOf(tetris.ShapeO))
	snapshot := tetris.Snapshot{Board: board, Piece: piece}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		tetris.NewTextRenderer(&buf, false).Render(snapshot)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, tetris.Height+1)
		assert.Equal(t, "|....@@....|", lines[0])
		assert.Equal(t, "|....@@....|", lines[1])
		assert.Equal(t, "|..........|", lines[2])
		assert.Equal(t, "|##........|", lines[19])
		assert.Equal(t, "+----------+", lines[20])
		assert.Equal(t, buf.String(), snapshot.String())
	})

	t.Run("colored", func(t *testing.T) {
		var buf bytes.Buffer
		tetris.NewTextRenderer(&buf, true).Render(snapshot)

		out := buf.String()
		assert.Contains(t, out, "\x1b[")
		assert.Equal(t, tetris.Height+1, strings.Count(out, "\n"))
	})
}
