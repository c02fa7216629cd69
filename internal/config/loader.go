package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads Pong configuration.
// Search order: customPath -> ~/.pong/pong.yaml -> ~/.pong/pong.toml -> ./configs/pong.yaml -> embedded default
// Only an explicit customPath reports read or parse errors; the fallbacks are skipped silently.
func Load(customPath string) (PongConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Locate returns the file Load reads for customPath, or "" when only the
// embedded default applies.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// searchPaths lists the fallback config files in lookup order.
func searchPaths() []string {
	var paths []string
	for _, path := range []string{
		userConfigPath("pong.yaml"),
		userConfigPath("pong.toml"),
		filepath.Join("configs", "pong.yaml"),
	} {
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// LoadFile reads and validates a single config file. Keys missing from the
// file keep their default values. The format is chosen by extension.
func LoadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals data as TOML for .toml files and YAML otherwise.
func decode(path string, data []byte, cfg *PongConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}
