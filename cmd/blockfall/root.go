package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "A falling-block puzzle game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = logger.With().Str("session", uuid.NewString()).Logger()
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/blockfall/config.yaml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.Uint64("seed", 0, "piece selector seed, 0 picks one from the clock")
	flags.String("selector", "random", "piece selector: random, bag or sequence")
	flags.StringSlice("sequence", nil, "shape kinds dealt by the sequence selector, e.g. I,O,T")
	bindFlags(a.v, flags, map[string]string{
		"log_level": "log-level",
		"seed":      "seed",
		"selector":  "selector",
		"sequence":  "sequence",
	})

	cmd.AddCommand(
		newPlayCmd(a),
		newTermCmd(a),
		newReplayCmd(a),
		newBenchCmd(a),
	)
	return cmd
}
