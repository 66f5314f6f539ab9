package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris/term"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newTermCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, seed, err := newSelector(a.cfg)
			if err != nil {
				return err
			}

			// The screen owns the terminal, so logs go to a file.
			logFile, err := os.OpenFile(a.cfg.Term.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()
			logger := zerolog.New(logFile).Level(a.log.GetLevel()).With().Timestamp().Logger()
			logger.Info().Uint64("seed", seed).Str("selector", a.cfg.Selector).Msg("starting terminal game")

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("new screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			game := &term.Game{
				Screen:   screen,
				Selector: selector,
				Interval: a.cfg.Term.FrameInterval,
				Logger:   logger,
			}
			totals, err := game.Play(ctx)
			screen.Fini()
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "games: %d  pieces: %d  lines: %d\n", totals.Games, totals.Pieces, totals.Lines)
			return nil
		},
	}

	cmd.Flags().Duration("frame-interval", 0, "time between frames (default 16ms)")
	cmd.Flags().String("log-file", "", "log file (default blockfall.log)")
	bindFlags(a.v, cmd.Flags(), map[string]string{
		"term.frame_interval": "frame-interval",
		"term.log_file":       "log-file",
	})
	return cmd
}
