package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/tetris"
	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	var colored, frames bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Run recorded scripts and print the final boards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				if err := replayScript(a, out, path, colored, frames); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&colored, "color", false, "color the boards")
	cmd.Flags().BoolVar(&frames, "frames", false, "print the board after every frame")
	return cmd
}

func replayScript(a *app, out io.Writer, path string, colored, everyFrame bool) error {
	script, err := tetris.LoadScript(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	log := a.log.With().Str("script", script.Name).Logger()
	log.Debug().Str("path", path).Int("frames", len(script.Frames)).Msg("replaying")

	text := tetris.NewTextRenderer(out, colored)
	var renderer tetris.Renderer
	if everyFrame {
		renderer = text
	}

	result, err := script.Run(renderer, tetris.WithLogger(log))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	title := color.New(color.Bold)
	outcome := color.New(color.FgGreen)
	if result.Outcome != tetris.Continue {
		outcome = color.New(color.FgYellow)
	}
	if colored {
		title.EnableColor()
		outcome.EnableColor()
	} else {
		title.DisableColor()
		outcome.DisableColor()
	}

	title.Fprintf(out, "%s\n", result.Name)
	fmt.Fprintf(out, "outcome: %s\n", outcome.Sprint(result.Outcome))
	fmt.Fprintf(out, "frames: %d  pieces: %d  lines: %d\n", result.Frames, result.Totals.Pieces, result.Totals.Lines)
	fmt.Fprint(out, text.Format(result.Snapshot))

	log.Info().Str("outcome", result.Outcome.String()).Int("frames", result.Frames).Msg("replay finished")
	return nil
}
