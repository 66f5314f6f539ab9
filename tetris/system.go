package tetris

// System is one stage of a frame. Systems run in registration order and may
// end the frame early by setting a terminal outcome.
type System interface {
	Execute(frame *Frame)
}

// Frame carries what happened during one engine step.
type Frame struct {
	Outcome Outcome
	// Applied counts commands that changed the piece.
	Applied int
	// Rejected counts moves and rotations refused by the board.
	Rejected int
	// Drops counts rows the piece fell, by gravity or soft drop.
	Drops int
	// Locked is set when the piece settled into the board.
	Locked bool
	// Cleared counts rows removed this frame.
	Cleared int
}

func newFrame() *Frame {
	return &Frame{Outcome: Continue}
}
