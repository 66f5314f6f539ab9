package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

const inputBuffer = 16

// KeyMap binds special keys and runes to commands.
type KeyMap struct {
	Keys  *intmap.Map[tcell.Key, tetris.Command]
	Runes *intmap.Map[rune, tetris.Command]
}

// DefaultKeyMap binds the arrows, Up and x to clockwise rotation, z to
// counterclockwise rotation, and Escape or Ctrl-C to exit.
func DefaultKeyMap() KeyMap {
	keys := intmap.New[tcell.Key, tetris.Command](8)
	keys.Put(tcell.KeyLeft, tetris.MoveLeft)
	keys.Put(tcell.KeyRight, tetris.MoveRight)
	keys.Put(tcell.KeyDown, tetris.MoveDown)
	keys.Put(tcell.KeyUp, tetris.RotateClockwise)
	keys.Put(tcell.KeyEscape, tetris.ExitGame)
	keys.Put(tcell.KeyCtrlC, tetris.ExitGame)

	runes := intmap.New[rune, tetris.Command](4)
	runes.Put('x', tetris.RotateClockwise)
	runes.Put('z', tetris.RotateCounterClockwise)
	runes.Put('q', tetris.ExitGame)

	return KeyMap{Keys: keys, Runes: runes}
}

// Lookup returns the command bound to a key event.
func (m KeyMap) Lookup(ev *tcell.EventKey) (tetris.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		return m.Runes.Get(ev.Rune())
	}
	return m.Keys.Get(ev.Key())
}

// Input pumps screen key events into a buffered channel that the engine
// drains without blocking. Events arriving while the buffer is full are
// dropped.
type Input struct {
	commands chan tetris.Command
	keys     KeyMap
	resized  chan struct{}
}

// NewInput starts reading events from screen. The reader stops when the
// screen is finalized.
func NewInput(screen tcell.Screen, keys KeyMap) *Input {
	in := &Input{
		commands: make(chan tetris.Command, inputBuffer),
		keys:     keys,
		resized:  make(chan struct{}, 1),
	}
	go in.pump(screen)
	return in
}

func (in *Input) pump(screen tcell.Screen) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			select {
			case in.resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			cmd, ok := in.keys.Lookup(ev)
			if !ok {
				continue
			}
			select {
			case in.commands <- cmd:
			default:
			}
		}
	}
}

func (in *Input) Poll() (tetris.Command, bool) {
	select {
	case cmd := <-in.commands:
		return cmd, true
	default:
		return 0, false
	}
}

// Drain discards pending commands.
func (in *Input) Drain() {
	for {
		if _, ok := in.Poll(); !ok {
			return
		}
	}
}

// Resized reports whether the terminal was resized since the last call.
func (in *Input) Resized() bool {
	select {
	case <-in.resized:
		return true
	default:
		return false
	}
}
