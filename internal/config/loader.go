package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked after the user
// config directory.
const LocalPath = "configs/blockflap.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.blockflap/config.yaml -> ./configs/blockflap.yaml -> embedded default.
// Files only need to carry the fields they override. A custom path that
// cannot be read, parsed, or validated is an error; the implicit locations
// are skipped when broken.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatFor(customPath))
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(LocalPath); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format selects the decoder for a config file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Parse decodes data on top of Default(), so omitted fields keep their
// defaults.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// tryLoad reads, parses and validates a config file, reporting false on any
// failure.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := Parse(data, formatFor(path))
	if err != nil || cfg.Validate() != nil {
		return Config{}, false
	}
	return cfg, true
}

// formatFor picks a decoder from the file extension.
func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockflap", filename)
}
