package tetris

// ScriptedInput is a FIFO of commands, useful for tests and replays.
type ScriptedInput struct {
	queue []Command
}

// NewScriptedInput creates an input source preloaded with cmds.
func NewScriptedInput(cmds ...Command) *ScriptedInput {
	return &ScriptedInput{queue: append([]Command(nil), cmds...)}
}

// Push appends commands to the queue.
func (s *ScriptedInput) Push(cmds ...Command) {
	s.queue = append(s.queue, cmds...)
}

// Poll pops the oldest pending command.
func (s *ScriptedInput) Poll() (Command, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	cmd := s.queue[0]
	s.queue = s.queue[1:]
	return cmd, true
}

// Pending returns the number of queued commands.
func (s *ScriptedInput) Pending() int {
	return len(s.queue)
}

// NoInput never has a command pending.
type NoInput struct{}

// Poll always returns false.
func (NoInput) Poll() (Command, bool) {
	return 0, false
}
