package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source tells where the loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localPath is the project-relative config file.
const localPath = "configs/slide2048.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.slide2048/config.yaml -> ./configs/slide2048.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Broken user and
// local files are skipped. Every file is decoded on top of DefaultConfig, so
// omitted keys keep their built-in values.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if p := UserConfigPath(); p != "" {
		if cfg, err := parseFile(p); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := parseFile(localPath); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := parse(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func parseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Dir returns ~/.slide2048, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide2048")
}

// UserConfigPath returns the path of the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
