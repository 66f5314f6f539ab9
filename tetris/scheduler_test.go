package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *tetris.Frame) {
	s.ExecuteCount++
	*s.order = append(*s.order, s.name)
}

type endingSystem struct {
	outcome tetris.Outcome
}

func (s *endingSystem) Execute(frame *tetris.Frame) {
	frame.Outcome = s.outcome
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		scheduler := tetris.NewScheduler()
		first := &countingSystem{order: &order, name: "first"}
		second := &countingSystem{order: &order, name: "second"}
		scheduler.Register(first)
		scheduler.Register(second)

		frame := scheduler.Once()
		assert.Equal(t, tetris.Continue, frame.Outcome)
		scheduler.Once()

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, 2, first.ExecuteCount)
		assert.Equal(t, 2, second.ExecuteCount)
	})

	t.Run("terminal outcome skips later systems", func(t *testing.T) {
		var order []string
		scheduler := tetris.NewScheduler()
		scheduler.Register(&endingSystem{outcome: tetris.Lost})
		after := &countingSystem{order: &order, name: "after"}
		scheduler.Register(after)

		frame := scheduler.Once()

		assert.Equal(t, tetris.Lost, frame.Outcome)
		assert.Equal(t, 0, after.ExecuteCount)
	})

	t.Run("stats", func(t *testing.T) {
		var order []string
		scheduler := tetris.NewScheduler()
		scheduler.Register(&countingSystem{order: &order, name: "a"})
		scheduler.Register(&endingSystem{outcome: tetris.Continue})

		stats := scheduler.Stats()
		require.Len(t, stats.Systems, 2)
		assert.Zero(t, stats.Systems[0].MinDuration)

		for i := 0; i < 3; i++ {
			scheduler.Once()
		}

		stats = scheduler.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		assert.Equal(t, "countingSystem", stats.Systems[0].Name)
		assert.Equal(t, "endingSystem", stats.Systems[1].Name)
		for _, s := range stats.Systems {
			assert.Equal(t, int64(3), s.ExecutionCount)
			assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
			assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
		}
	})
}
