package config

import (
	_ "embed"
)

//go:embed defaults/slide2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the
// embedded defaults/slide2048.yaml.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			CellWidth: 6,
			FPS:       30,
			Colors: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "orange",
				32:   "bright_red",
				64:   "red",
				128:  "bright_yellow",
				256:  "bright_green",
				512:  "green",
				1024: "bright_cyan",
				2048: "bright_magenta",
				4096: "magenta",
			},
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Pause:   []string{"p", "esc"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Autoplay: AutoplayConfig{
			Strategy: "greedy",
			Games:    1,
			MaxMoves: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
