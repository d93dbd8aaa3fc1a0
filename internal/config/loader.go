package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t2048File = "2048.yaml"

// Sources reported by LoadT2048WithSource when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.tui2048/configs/2048.yaml -> ./configs/2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, _, err := LoadT2048WithSource(customPath)
	return cfg, err
}

// LoadT2048WithSource is LoadT2048 that also reports where the configuration
// came from: a file path, SourceEmbedded or SourceBuiltin.
//
// Fields missing from a file keep their default values. Errors only surface
// for customPath; broken files further down the search order are skipped.
func LoadT2048WithSource(customPath string) (T2048Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readT2048(customPath)
		if err != nil {
			return DefaultT2048Config(), "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(t2048File); userCfgPath != "" {
		if cfg, err := readT2048(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", t2048File)
	if cfg, err := readT2048(localPath); err == nil {
		return cfg, localPath, nil
	}

	// Use embedded default YAML
	cfg, err := parseT2048(default2048YAML)
	if err != nil {
		return DefaultT2048Config(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func readT2048(path string) (T2048Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return T2048Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parseT2048(data)
	if err != nil {
		return T2048Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseT2048 decodes YAML over the defaults and validates the result.
func parseT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", "configs", filename)
}
