// Package config loads the YAML configuration of the 2048 front end:
// tile colors, key bindings, logging and autoplay defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/core"
)

// Config is the whole configuration file.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Keys     KeysConfig     `yaml:"keys"`
	Log      LogConfig      `yaml:"log"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	CellWidth int            `yaml:"cell_width"` // characters per cell, borders excluded
	FPS       int            `yaml:"fps"`
	Colors    map[int]string `yaml:"colors"` // tile value -> color name
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key names.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log file used while the TUI owns the terminal
}

// AutoplayConfig holds the defaults of the auto command.
type AutoplayConfig struct {
	Strategy string `yaml:"strategy"`
	Games    int    `yaml:"games"`
	MaxMoves int    `yaml:"max_moves"`
	Seed     int64  `yaml:"seed"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Display.CellWidth < 4 {
		return fmt.Errorf("%w: display.cell_width must be at least 4, got %d", ErrInvalid, c.Display.CellWidth)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display.fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Autoplay.Games < 0 || c.Autoplay.MaxMoves < 0 {
		return fmt.Errorf("%w: autoplay.games and autoplay.max_moves must not be negative", ErrInvalid)
	}

	bindings := map[string][]string{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left, "right": c.Keys.Right,
		"pause": c.Keys.Pause, "restart": c.Keys.Restart, "quit": c.Keys.Quit,
	}
	seen := make(map[string]string)
	for action, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no binding", ErrInvalid, action)
		}
		for _, k := range keys {
			if other, ok := seen[k]; ok && other != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, other, action)
			}
			seen[k] = action
		}
	}
	return nil
}

// Palette resolves the configured color names.
func (c Config) Palette() (map[int]core.Color, error) {
	p := make(map[int]core.Color, len(c.Display.Colors))
	for value, name := range c.Display.Colors {
		if value <= 0 {
			return nil, fmt.Errorf("%w: display.colors: tile value %d", ErrInvalid, value)
		}
		color, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w: display.colors[%d]: unknown color %q", ErrInvalid, value, name)
		}
		p[value] = color
	}
	return p, nil
}

// LogLevel parses log.level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return lvl, nil
}
