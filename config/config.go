// Package config loads runtime settings from an optional .env file and
// POPSHOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

const envPrefix = "POPSHOT_"

// Config holds every tunable that is not part of the game rules.
type Config struct {
	Title string
	Scale float64 // window size multiplier over the 800x600 playfield
	Seed  uint64  // 0 picks a clock based seed

	ShowFPS    bool
	Debug      bool
	PopEffects bool

	SpritePath    string // empty uses the embedded ship
	ScriptPath    string // JSON test script driving input and screenshots
	ScreenshotDir string

	Audio AudioConfig

	// Tick is the frame interval of the terminal frontend. The window
	// frontend follows the display refresh instead.
	Tick time.Duration
}

type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0..1
	SampleRate   int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Title:         "popshot",
		Scale:         1,
		PopEffects:    true,
		ScreenshotDir: "screenshots",
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Tick: 16 * time.Millisecond,
	}
}

// Load reads files (default ".env") into the process environment without
// overriding variables that are already set, then builds a Config from the
// environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from POPSHOT_* variables layered over Default.
// Unparseable values are reported rather than ignored.
func FromEnv() (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
				return
			}
			*dst = b
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
				return
			}
			*dst = f
		}
	}

	str("TITLE", &cfg.Title)
	float("SCALE", &cfg.Scale)
	if v, ok := lookup("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", envPrefix, err))
		} else {
			cfg.Seed = seed
		}
	}
	boolean("SHOW_FPS", &cfg.ShowFPS)
	boolean("DEBUG", &cfg.Debug)
	boolean("POP_EFFECTS", &cfg.PopEffects)
	str("SPRITE", &cfg.SpritePath)
	str("SCRIPT", &cfg.ScriptPath)
	str("SCREENSHOT_DIR", &cfg.ScreenshotDir)

	boolean("AUDIO_ENABLED", &cfg.Audio.Enabled)
	// Volume is given in percent, as in most mixers.
	if v, ok := lookup("MASTER_VOLUME"); ok {
		pct, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", envPrefix, err))
		} else {
			cfg.Audio.MasterVolume = min(max(float64(pct)/100, 0), 1)
		}
	}
	if v, ok := lookup("SAMPLE_RATE"); ok {
		rate, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSAMPLE_RATE: %w", envPrefix, err))
		} else {
			cfg.Audio.SampleRate = rate
		}
	}
	if v, ok := lookup("TICK_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTICK_MS: %w", envPrefix, err))
		} else {
			cfg.Tick = time.Duration(ms) * time.Millisecond
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the frontends cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalid, c.Audio.SampleRate)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalid, c.Tick)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
