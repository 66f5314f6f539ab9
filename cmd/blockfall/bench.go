package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// botCommands weights the bot towards sideways moves; ExitGame is never sent.
var botCommands = []tetris.Command{
	tetris.MoveLeft, tetris.MoveLeft,
	tetris.MoveRight, tetris.MoveRight,
	tetris.MoveDown,
	tetris.RotateClockwise,
	tetris.RotateCounterClockwise,
}

// botInput presses up to two random keys per frame.
type botInput struct {
	rng     *rand.Rand
	pending []tetris.Command
}

func newBotInput(seed uint64) *botInput {
	return &botInput{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *botInput) press() {
	for n := b.rng.IntN(3); n > 0; n-- {
		b.pending = append(b.pending, botCommands[b.rng.IntN(len(botCommands))])
	}
}

func (b *botInput) Poll() (tetris.Command, bool) {
	if len(b.pending) == 0 {
		return 0, false
	}
	cmd := b.pending[0]
	b.pending = b.pending[1:]
	return cmd, true
}

type benchOptions struct {
	Duration       time.Duration
	MaxFrames      int64
	FrameStep      int64
	GCPauseMetrics bool
}

// runBench plays bot games on a manual clock until the duration elapses or
// MaxFrames frames have run, restarting after every loss.
func runBench(ctx context.Context, opts benchOptions, selector tetris.PieceSelector, seed uint64, log zerolog.Logger) *Report {
	clock := tetris.NewManualClock(0)
	bot := newBotInput(seed)
	engine := tetris.NewEngine[int64](clock, bot, selector, nil, tetris.WithLogger(log))

	report := &Report{
		Duration:       opts.Duration,
		MaxFrames:      opts.MaxFrames,
		FrameStep:      time.Duration(opts.FrameStep) * time.Millisecond,
		Seed:           seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for opts.MaxFrames <= 0 || report.TotalFrames < opts.MaxFrames {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Advance(opts.FrameStep)
			bot.press()

			frameStart := time.Now()
			outcome := engine.Frame()
			report.FrameTime.Add(time.Since(frameStart))
			report.TotalFrames++

			if outcome == tetris.Lost {
				bot.pending = bot.pending[:0]
				engine.Reset()
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Totals = engine.Totals()
	report.Scheduler = engine.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run headless bot games and report engine timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, seed, err := newSelector(a.cfg)
			if err != nil {
				return err
			}
			if opts.FrameStep <= 0 {
				return fmt.Errorf("frame step must be positive, got %d", opts.FrameStep)
			}

			a.log.Info().Dur("duration", opts.Duration).Int64("max_frames", opts.MaxFrames).Uint64("seed", seed).Msg("starting bench")
			report := runBench(cmd.Context(), opts, selector, seed, a.log)
			a.log.Info().Int64("frames", report.TotalFrames).Int("games", report.Totals.Games).Msg("bench finished")

			return report.Generate(cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&opts.Duration, "duration", 10*time.Second, "how long to run for")
	cmd.Flags().Int64Var(&opts.MaxFrames, "frames", 0, "stop after this many frames, 0 for no limit")
	cmd.Flags().Int64Var(&opts.FrameStep, "frame-step", 16, "simulated milliseconds per frame")
	cmd.Flags().BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "include GC pause metrics in the report")
	return cmd
}
