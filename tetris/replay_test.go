package tetris_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatResult(r *tetris.ReplayResult) []byte {
	header := fmt.Sprintf("script: %s\noutcome: %s\nframes: %d\npieces: %d\nlines: %d\n",
		r.Name, r.Outcome, r.Frames, r.Totals.Pieces, r.Totals.Lines)
	return []byte(header + r.Snapshot.String())
}

func TestReplayScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "replay", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			script, err := tetris.LoadScript(path)
			require.NoError(t, err)
			assert.Equal(t, name, script.Name)

			result, err := script.Run(nil)
			require.NoError(t, err)

			g.Assert(t, name, formatResult(result))
		})
	}
}

func TestReplayRendersEachContinuingFrame(t *testing.T) {
	script, err := tetris.LoadScript(filepath.Join("testdata", "replay", "quit.yaml"))
	require.NoError(t, err)

	var renders int
	result, err := script.Run(tetris.RendererFunc(func(tetris.Snapshot) { renders++ }))
	require.NoError(t, err)

	assert.Equal(t, tetris.Quit, result.Outcome)
	assert.Equal(t, 1, result.Frames)
	assert.Zero(t, renders)
}

func TestParseScript(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		script, err := tetris.ParseScript([]byte(`
name: tiny
rows:
  19: "#########."
pieces: [i, O]
frames:
  - advance: 1001
    input: [MoveLeft, rotateclockwise]
    repeat: 2
`))
		require.NoError(t, err)
		assert.Equal(t, []tetris.ShapeKind{tetris.ShapeI, tetris.ShapeO}, script.Pieces)
		require.Len(t, script.Frames, 1)
		assert.Equal(t, []tetris.Command{tetris.MoveLeft, tetris.RotateClockwise}, script.Frames[0].Input)
		assert.Equal(t, "#########.", script.Board().Row(19))
	})

	errorCases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown command", "name: x\nframes:\n  - input: [HardDrop]\n", "unknown command"},
		{"unknown shape", "name: x\npieces: [Q]\nframes: []\n", "unknown shape"},
		{"unknown field", "name: x\nspeed: 3\nframes: []\n", "speed"},
		{"row out of range", "name: x\nrows:\n  20: \"#\"\nframes: []\n", "out of range"},
		{"bad cell", "name: x\nrows:\n  3: \"#x\"\nframes: []\n", "invalid cell"},
		{"wide row", "name: x\nrows:\n  3: \"###########\"\nframes: []\n", "wider"},
		{"negative advance", "name: x\nframes:\n  - advance: -1\n", "negative advance"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tetris.ParseScript([]byte(tc.yaml))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := tetris.LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
