package tetris

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a deterministic game recording: a starting board, the piece
// sequence, and per-frame clock advances and inputs.
type Script struct {
	// Name identifies the script in logs and golden files.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Rows pre-fills the board. Keys are row indices (0 is the top), values
	// use '#' for settled cells and '.' for empty ones.
	Rows map[int]string `yaml:"rows,omitempty"`

	// Pieces is the spawn order, repeated when exhausted. Empty means the
	// catalog order.
	Pieces []ShapeKind `yaml:"pieces,omitempty"`

	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame describes one or more identical frames.
type ScriptFrame struct {
	// Advance moves the manual clock forward, in milliseconds, before the
	// frame runs.
	Advance int64 `yaml:"advance,omitempty"`

	// Input is queued before the frame runs.
	Input []Command `yaml:"input,omitempty"`

	// Repeat runs the frame this many times. Zero counts as one.
	Repeat int `yaml:"repeat,omitempty"`
}

// ReplayResult is the state reached by running a script.
type ReplayResult struct {
	Name     string
	Outcome  Outcome
	Frames   int
	Totals   Totals
	Snapshot Snapshot
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script and validates it.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	script := &Script{}
	if err := dec.Decode(script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks row indices, row patterns and frame fields.
func (s *Script) Validate() error {
	for y, pattern := range s.Rows {
		if y < 0 || y >= Height {
			return fmt.Errorf("script %q: row %d out of range", s.Name, y)
		}
		if len(pattern) > Width {
			return fmt.Errorf("script %q: row %d is wider than %d cells", s.Name, y, Width)
		}
		for _, c := range pattern {
			if c != settledCell && c != emptyCell {
				return fmt.Errorf("script %q: row %d has invalid cell %q", s.Name, y, c)
			}
		}
	}
	for i, f := range s.Frames {
		if f.Advance < 0 {
			return fmt.Errorf("script %q: frame %d has negative advance", s.Name, i)
		}
		if f.Repeat < 0 {
			return fmt.Errorf("script %q: frame %d has negative repeat", s.Name, i)
		}
	}
	return nil
}

// Board builds the starting board described by Rows.
func (s *Script) Board() Board {
	var board Board
	for y, pattern := range s.Rows {
		board.SetRow(y, pattern)
	}
	return board
}

// Run plays the script on a manual clock and returns the final state.
// Playback stops early when a frame ends the game. renderer may be nil.
func (s *Script) Run(renderer Renderer, opts ...Option) (*ReplayResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	clock := NewManualClock(0)
	input := NewScriptedInput()
	opts = append([]Option{WithBoard(s.Board())}, opts...)
	engine := NewEngine[int64](clock, input, NewSequenceSelector(s.Pieces...), renderer, opts...)

	result := &ReplayResult{Name: s.Name}

playback:
	for _, f := range s.Frames {
		repeat := max(f.Repeat, 1)
		for range repeat {
			if engine.Outcome().Terminal() {
				break playback
			}
			clock.Advance(f.Advance)
			input.Push(f.Input...)
			engine.Frame()
			result.Frames++
		}
	}

	result.Outcome = engine.Outcome()
	result.Totals = engine.Totals()
	result.Snapshot = engine.Snapshot()
	return result, nil
}
