package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Frontends.
const (
	FrontendGL       = "gl"
	FrontendTTY      = "tty"
	FrontendHeadless = "headless"
)

const envPrefix = "CUBESTORM"

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SimConfig struct {
	Seed uint32 `mapstructure:"seed"`
}

type HeadlessConfig struct {
	Ticks int `mapstructure:"ticks"`
}

type AudioConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"`
	SFX     string `mapstructure:"sfx"`
	Music   string `mapstructure:"music"`
	Volume  int    `mapstructure:"volume"`
}

// Config is the merged view of defaults, config file, environment and
// command-line flags, in increasing priority.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Frontend string         `mapstructure:"frontend"`
	Sim      SimConfig      `mapstructure:"sim"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Audio    AudioConfig    `mapstructure:"audio"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("frontend", FrontendGL)
	v.SetDefault("sim.seed", 12345)
	v.SetDefault("headless.ticks", 3600)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.backend", "oto")
	v.SetDefault("audio.sfx", "shoot_1.wav")
	v.SetDefault("audio.music", "")
	v.SetDefault("audio.volume", 7)
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"frontend":      "frontend",
	"seed":          "sim.seed",
	"ticks":         "headless.ticks",
	"audio":         "audio.enabled",
	"audio-backend": "audio.backend",
	"sfx":           "audio.sfx",
	"music":         "audio.music",
	"volume":        "audio.volume",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("cubestorm", pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("frontend", FrontendGL, "frontend: gl, tty or headless")
	fs.Uint32("seed", 12345, "random seed")
	fs.Int("ticks", 3600, "ticks to run in headless mode")
	fs.Bool("audio", true, "enable audio")
	fs.String("audio-backend", "oto", "audio output: oto, beep or none")
	fs.String("sfx", "shoot_1.wav", "shot sound effect (WAV)")
	fs.String("music", "", "background music (MP3)")
	fs.Int("volume", 7, "music volume 0-10")
	return fs
}

// Load parses args and merges every configuration layer. It returns
// pflag.ErrHelp unchanged when usage was requested.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	file, _ := fs.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("cubestorm")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown enumerations and clamps the volume level.
func (c *Config) Validate() error {
	c.Frontend = strings.ToLower(c.Frontend)
	switch c.Frontend {
	case FrontendGL, FrontendTTY, FrontendHeadless:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}

	c.Audio.Backend = strings.ToLower(c.Audio.Backend)
	switch c.Audio.Backend {
	case "oto", "beep", "none":
	default:
		return fmt.Errorf("unknown audio backend %q", c.Audio.Backend)
	}

	if c.Headless.Ticks < 0 {
		return fmt.Errorf("headless.ticks must not be negative, got %d", c.Headless.Ticks)
	}
	c.Audio.Volume = max(0, min(10, c.Audio.Volume))
	return nil
}
