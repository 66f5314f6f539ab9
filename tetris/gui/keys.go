package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// KeyMap translates ebiten keys into game commands.
type KeyMap = intmap.Map[ebiten.Key, tetris.Command]

// DefaultKeyMap binds the arrow keys, Up and X to clockwise rotation, Z to
// counterclockwise rotation and Escape to exit.
func DefaultKeyMap() *KeyMap {
	m := intmap.New[ebiten.Key, tetris.Command](8)
	m.Put(ebiten.KeyLeft, tetris.MoveLeft)
	m.Put(ebiten.KeyRight, tetris.MoveRight)
	m.Put(ebiten.KeyDown, tetris.MoveDown)
	m.Put(ebiten.KeyUp, tetris.RotateClockwise)
	m.Put(ebiten.KeyX, tetris.RotateClockwise)
	m.Put(ebiten.KeyZ, tetris.RotateCounterClockwise)
	m.Put(ebiten.KeyEscape, tetris.ExitGame)
	return m
}

// KeyQueue buffers commands from pressed keys until the engine polls them.
type KeyQueue struct {
	keys    *KeyMap
	pending []tetris.Command
}

func NewKeyQueue(keys *KeyMap) *KeyQueue {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &KeyQueue{keys: keys}
}

// Collect queues the commands bound to keys, in order. Unbound keys are
// ignored.
func (q *KeyQueue) Collect(keys []ebiten.Key) {
	for _, k := range keys {
		if cmd, ok := q.keys.Get(k); ok {
			q.pending = append(q.pending, cmd)
		}
	}
}

func (q *KeyQueue) Poll() (tetris.Command, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd, true
}

// Clear drops all queued commands.
func (q *KeyQueue) Clear() {
	q.pending = q.pending[:0]
}
