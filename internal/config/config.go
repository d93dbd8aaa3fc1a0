// Package config provides YAML-based configuration loading for the 2048 game.
package config

import (
	"fmt"
)

// Limits shared with the game engine.
const (
	MinBoardSize = 2
	MaxBoardSize = 16
	MaxExponent  = 63
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// SpawnConfig defines how tiles enter the board.
type SpawnConfig struct {
	StartExponent int           `yaml:"start_exponent"` // Exponent of the two seed tiles
	DelayMS       int           `yaml:"delay_ms"`       // Pause between a move and its spawn
	Weights       []SpawnWeight `yaml:"weights"`
}

// SpawnWeight gives an exponent a relative chance of being spawned.
type SpawnWeight struct {
	Exponent int `yaml:"exponent"`
	Weight   int `yaml:"weight"`
}

// ThemeConfig selects the tile colour scheme.
type ThemeConfig struct {
	Scheme string `yaml:"scheme"`
}

// Validate checks the configuration for values the game cannot use.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board.size %d outside %d..%d", c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Spawn.StartExponent < 1 || c.Spawn.StartExponent > MaxExponent {
		return fmt.Errorf("config: spawn.start_exponent %d outside 1..%d", c.Spawn.StartExponent, MaxExponent)
	}
	if c.Spawn.DelayMS < 0 {
		return fmt.Errorf("config: spawn.delay_ms %d is negative", c.Spawn.DelayMS)
	}
	if len(c.Spawn.Weights) == 0 {
		return fmt.Errorf("config: spawn.weights is empty")
	}

	total := 0
	for i, w := range c.Spawn.Weights {
		if w.Exponent < 1 || w.Exponent > MaxExponent {
			return fmt.Errorf("config: spawn.weights[%d].exponent %d outside 1..%d", i, w.Exponent, MaxExponent)
		}
		if w.Weight < 0 {
			return fmt.Errorf("config: spawn.weights[%d].weight %d is negative", i, w.Weight)
		}
		total += w.Weight
	}
	if total == 0 {
		return fmt.Errorf("config: spawn.weights sum to zero")
	}
	return nil
}
