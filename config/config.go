// Package config loads demo application settings from TOML
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backends accepted by the "backend" key
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Scenes accepted by the "[demo] scene" key
var Scenes = []string{"balls", "spinner", "pulse", "paint", "qr", "image"}

// MaxBalls bounds the bouncing-ball scene population
const MaxBalls = 64

var ErrInvalid = errors.New("invalid config")

// Config is the complete application configuration
type Config struct {
	Backend  string `toml:"backend"`
	FPS      int    `toml:"fps"`
	Mute     bool   `toml:"mute"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	Canvas Canvas `toml:"canvas"`
	Demo   Demo   `toml:"demo"`
}

// Canvas mirrors engine.Construct arguments; negative values select full size or centering
type Canvas struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	X      int  `toml:"x"`
	Y      int  `toml:"y"`
	Square bool `toml:"square"`
}

// Demo holds scene settings
type Demo struct {
	Scene string `toml:"scene"`
	Balls int    `toml:"balls"`
	Seed  uint64 `toml:"seed"`
	Image string `toml:"image"`
	QR    string `toml:"qr"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend:  BackendTcell,
		FPS:      60,
		LogLevel: "info",
		Canvas: Canvas{
			Width:  -1,
			Height: -1,
			X:      -1,
			Y:      -1,
		},
		Demo: Demo{
			Scene: "balls",
			Balls: 8,
			Seed:  1,
			QR:    "https://github.com/lixenwraith/halfblock",
		},
	}
}

// Load decodes path over the defaults; unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error

	if c.Backend != BackendTcell && c.Backend != BackendANSI {
		errs = append(errs, fmt.Errorf("%w: backend %q (want %q or %q)", ErrInvalid, c.Backend, BackendTcell, BackendANSI))
	}
	if c.FPS < 0 {
		errs = append(errs, fmt.Errorf("%w: fps %d is negative", ErrInvalid, c.FPS))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(Scenes, c.Demo.Scene) {
		errs = append(errs, fmt.Errorf("%w: scene %q (want one of %s)", ErrInvalid, c.Demo.Scene, strings.Join(Scenes, ", ")))
	}
	if c.Demo.Balls < 0 || c.Demo.Balls > MaxBalls {
		errs = append(errs, fmt.Errorf("%w: balls %d outside [0,%d]", ErrInvalid, c.Demo.Balls, MaxBalls))
	}

	return errors.Join(errs...)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("config: %w", err)
	}
	return f.Close()
}
