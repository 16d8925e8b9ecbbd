// Package config loads game settings from the built-in defaults, an optional TOML file,
// and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/woger/asset"
	"github.com/lixenwraith/woger/constant"
)

// Sentinel errors
var (
	ErrInvalidField    = errors.New("invalid play field")
	ErrInvalidWorld    = errors.New("invalid world settings")
	ErrInvalidAudio    = errors.New("invalid audio settings")
	ErrInvalidInterval = errors.New("interval must be positive")
)

// Duration decodes Go duration strings such as "3s" or "100ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Field is the play area in world units
type Field struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// World holds simulation tuning
type World struct {
	Gravity        float64  `toml:"gravity"`
	TimeStep       float64  `toml:"timestep"`
	Owanges        int      `toml:"owanges"`
	Glide          int      `toml:"glide"`
	PruneInterval  Duration `toml:"prune_interval"`
	CherryInterval Duration `toml:"cherry_interval"`
	Seed           int64    `toml:"seed"`
}

// Audio holds sound output settings
type Audio struct {
	Enabled     bool     `toml:"enabled"`
	Channels    int      `toml:"channels"`
	SampleRate  int      `toml:"sample_rate"`
	Buffer      Duration `toml:"buffer"`
	DataDir     string   `toml:"data_dir"`
	MusicTracks []string `toml:"music_tracks"`
}

// Log holds logging settings
type Log struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level"`
}

// Config is the complete game configuration
type Config struct {
	Field Field `toml:"field"`
	World World `toml:"world"`
	Audio Audio `toml:"audio"`
	Log   Log   `toml:"log"`
}

// Default decodes the built-in configuration over the simulation constants
func Default() *Config {
	cfg := &Config{
		World: World{
			Gravity:  constant.Gravity,
			TimeStep: constant.TimeStep,
			Glide:    constant.GlideAllowance,
		},
	}
	if _, err := toml.Decode(asset.DefaultConfig, cfg); err != nil {
		// Built-in config is compiled in; failing to decode it is a build defect
		panic(fmt.Errorf("default config: %w", err))
	}
	return cfg
}

// Load applies the file at path (if non-empty and present) and environment overrides over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides selected settings from WOGER_* variables; malformed values are ignored
func applyEnv(cfg *Config) {
	if v := os.Getenv("WOGER_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	if v := os.Getenv("WOGER_MASTER_CHANNELS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.Channels = n
		}
	}

	if v := os.Getenv("WOGER_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.World.Seed = n
		}
	}

	if v := os.Getenv("WOGER_DATA_DIR"); v != "" {
		cfg.Audio.DataDir = v
	}

	if v := os.Getenv("WOGER_MUSIC_TRACKS"); v != "" {
		var tracks []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tracks = append(tracks, t)
			}
		}
		cfg.Audio.MusicTracks = tracks
	}
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidField, c.Field.Width, c.Field.Height)
	}
	if c.World.TimeStep <= 0 {
		return fmt.Errorf("%w: timestep %g", ErrInvalidWorld, c.World.TimeStep)
	}
	if c.World.Owanges < 0 || c.World.Glide < 0 {
		return fmt.Errorf("%w: owanges %d, glide %d", ErrInvalidWorld, c.World.Owanges, c.World.Glide)
	}
	if c.World.PruneInterval.Duration <= 0 {
		return fmt.Errorf("%w: prune_interval", ErrInvalidInterval)
	}
	if c.World.CherryInterval.Duration <= 0 {
		return fmt.Errorf("%w: cherry_interval", ErrInvalidInterval)
	}
	if c.Audio.Channels <= 0 || c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: channels %d, sample_rate %d", ErrInvalidAudio, c.Audio.Channels, c.Audio.SampleRate)
	}
	if c.Audio.Buffer.Duration <= 0 {
		return fmt.Errorf("%w: buffer", ErrInvalidInterval)
	}
	return nil
}
