package tetris

import "fmt"

// Outcome is the result of one frame.
type Outcome int

const (
	// Continue means the game is still running.
	Continue Outcome = iota
	// Lost means a freshly spawned piece collided with the stack.
	Lost
	// Quit means an ExitGame command was observed.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Terminal reports whether the play session is over.
func (o Outcome) Terminal() bool {
	return o != Continue
}
