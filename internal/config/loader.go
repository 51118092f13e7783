package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the effective configuration. An explicit path must load
// cleanly or Load fails; the well-known locations are optional and fall
// through on any error. Search order: customPath, ~/.blockfall/config.yaml,
// ./configs/blockfall.yaml, embedded default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if cfg, ok := tryLoad(filepath.Join(home, ".blockfall", "config.yaml")); ok {
			return cfg, nil
		}
	}
	if cfg, ok := tryLoad(filepath.Join("configs", "blockfall.yaml")); ok {
		return cfg, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// tryLoad reads and parses one optional config location.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}
