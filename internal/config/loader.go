package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from, for logging.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const (
	localConfigPath = "configs/veggiejump.yaml"
	fileName        = "config.yaml"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.veggiejump/config.yaml -> ./configs/veggiejump.yaml -> embedded default.
// Files are decoded over DefaultConfig, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, Source(customPath), nil
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, Source(userCfgPath), nil
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, Source(localConfigPath), nil
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".veggiejump", filename)
}
