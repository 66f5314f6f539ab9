package tetris

import "time"

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ElapsedMillis returns the whole milliseconds between from and to.
func (SystemClock) ElapsedMillis(from, to time.Time) int64 {
	return to.Sub(from).Milliseconds()
}

// ManualClock is a clock that only moves when told to. Instants are
// milliseconds since the clock was created.
type ManualClock struct {
	now int64
}

// NewManualClock creates a manual clock reading start milliseconds.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() int64 {
	return c.now
}

// ElapsedMillis returns to - from.
func (c *ManualClock) ElapsedMillis(from, to int64) int64 {
	return to - from
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set moves the clock to an absolute reading.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}
