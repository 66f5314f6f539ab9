package tetris

import (
	"fmt"
	"strings"
)

// Command is one player request consumed by the engine.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	MoveDown
	RotateClockwise
	RotateCounterClockwise
	ExitGame
)

var commandNames = [...]string{
	"MoveLeft",
	"MoveRight",
	"MoveDown",
	"RotateClockwise",
	"RotateCounterClockwise",
	"ExitGame",
}

// Commands lists the full command vocabulary.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, MoveDown, RotateClockwise, RotateCounterClockwise, ExitGame}
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Command) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(commandNames) {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(commandNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Command) UnmarshalText(text []byte) error {
	cmd, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}

// ParseCommand converts a command name into a Command. Matching ignores case.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}
