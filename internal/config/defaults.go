package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var default2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			StartExponent: 1,
			DelayMS:       100,
			Weights: []SpawnWeight{
				{Exponent: 1, Weight: 9},
				{Exponent: 2, Weight: 1},
			},
		},
		Theme: ThemeConfig{
			Scheme: "original",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048", "t2048":
		return default2048YAML
	default:
		return nil
	}
}
