package main

import (
	"github.com/plus3/blockfall/tetris/gui"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, seed, err := newSelector(a.cfg)
			if err != nil {
				return err
			}
			a.log.Info().Uint64("seed", seed).Str("selector", a.cfg.Selector).Bool("debug", a.cfg.GUI.Debug).Msg("starting window")

			game := gui.NewGame(gui.Config{
				CellSize: a.cfg.GUI.CellSize,
				Debug:    a.cfg.GUI.Debug,
			}, selector, a.log)
			if err := game.Run(appName); err != nil {
				return err
			}

			totals := game.Engine().Totals()
			a.log.Info().Int("games", totals.Games).Int64("pieces", totals.Pieces).Int64("lines", totals.Lines).Msg("bye")
			return nil
		},
	}

	cmd.Flags().Int("cell-size", 32, "cell size in pixels")
	cmd.Flags().Bool("debug", false, "show the Dear ImGui debug overlay")
	bindFlags(a.v, cmd.Flags(), map[string]string{
		"gui.cell_size": "cell-size",
		"gui.debug":     "debug",
	})
	return cmd
}
