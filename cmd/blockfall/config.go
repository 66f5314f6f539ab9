package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kirsle/configdir"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const appName = "blockfall"

// configDir is where the default config.yaml is looked up.
var configDir = func() string { return configdir.LocalConfig(appName) }

// Config is the merged result of defaults, the config file, BLOCKFALL_*
// environment variables and flags, in increasing priority.
type Config struct {
	LogLevel string     `mapstructure:"log_level"`
	Seed     uint64     `mapstructure:"seed"`
	Selector string     `mapstructure:"selector"`
	Sequence []string   `mapstructure:"sequence"`
	GUI      GUIConfig  `mapstructure:"gui"`
	Term     TermConfig `mapstructure:"term"`
}

type GUIConfig struct {
	CellSize int  `mapstructure:"cell_size"`
	Debug    bool `mapstructure:"debug"`
}

type TermConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	LogFile       string        `mapstructure:"log_file"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("selector", "random")
	v.SetDefault("sequence", []string{})
	v.SetDefault("gui.cell_size", 32)
	v.SetDefault("gui.debug", false)
	v.SetDefault("term.frame_interval", 16*time.Millisecond)
	v.SetDefault("term.log_file", "blockfall.log")

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and decodes the merged settings.
// An explicit path must exist; the default location is optional.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// newSelector builds the piece selector named by cfg. A zero seed picks one
// from the wall clock; the seed used is returned so runs can be repeated.
func newSelector(cfg Config) (tetris.PieceSelector, uint64, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	switch strings.ToLower(cfg.Selector) {
	case "random", "":
		return tetris.NewRandomSelector(seed), seed, nil
	case "bag":
		return tetris.NewBagSelector(seed), seed, nil
	case "sequence":
		kinds := make([]tetris.ShapeKind, 0, len(cfg.Sequence))
		for _, name := range cfg.Sequence {
			kind, err := tetris.ParseShapeKind(name)
			if err != nil {
				return nil, 0, fmt.Errorf("sequence: %w", err)
			}
			kinds = append(kinds, kind)
		}
		return tetris.NewSequenceSelector(kinds...), seed, nil
	default:
		return nil, 0, fmt.Errorf("unknown selector %q", cfg.Selector)
	}
}
