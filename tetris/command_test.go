package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for _, cmd := range tetris.Commands() {
		parsed, err := tetris.ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, parsed)
	}

	cmd, err := tetris.ParseCommand("  movedown ")
	require.NoError(t, err)
	assert.Equal(t, tetris.MoveDown, cmd)

	_, err = tetris.ParseCommand("HardDrop")
	assert.ErrorContains(t, err, "unknown command")

	_, err = tetris.Command(42).MarshalText()
	assert.Error(t, err)
}

func TestOutcome(t *testing.T) {
	assert.False(t, tetris.Continue.Terminal())
	assert.True(t, tetris.Lost.Terminal())
	assert.True(t, tetris.Quit.Terminal())
	assert.Equal(t, "lost", tetris.Lost.String())
}

func TestScriptedInput(t *testing.T) {
	input := tetris.NewScriptedInput(tetris.MoveLeft)
	input.Push(tetris.ExitGame)

	cmd, ok := input.Poll()
	assert.True(t, ok)
	assert.Equal(t, tetris.MoveLeft, cmd)

	cmd, ok = input.Poll()
	assert.True(t, ok)
	assert.Equal(t, tetris.ExitGame, cmd)

	_, ok = input.Poll()
	assert.False(t, ok)

	_, ok = tetris.NoInput{}.Poll()
	assert.False(t, ok)
}
