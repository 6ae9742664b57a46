// Package config provides YAML-based configuration for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
}

// BoardConfig defines spawn parameters for the board.
type BoardConfig struct {
	InitialTiles       int     `yaml:"initial_tiles"`
	SpawnFourThreshold float64 `yaml:"spawn_four_threshold"` // draw above this spawns a 4
}

// AnimationConfig defines animation lengths in ticks. Zero disables a phase.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// InputConfig defines input translation parameters.
type InputConfig struct {
	SwipeMinDistance int `yaml:"swipe_min_distance"` // in cells, after aspect correction
	SwipeRowScale    int `yaml:"swipe_row_scale"`    // terminal cells are about twice as tall as wide
}

// Validate checks that values are usable.
func (c T2048Config) Validate() error {
	if c.Board.InitialTiles < 0 {
		return fmt.Errorf("%w: board.initial_tiles %d is negative", ErrInvalidConfig, c.Board.InitialTiles)
	}
	if c.Board.SpawnFourThreshold < 0 || c.Board.SpawnFourThreshold > 1 {
		return fmt.Errorf("%w: board.spawn_four_threshold %.3f outside [0,1]", ErrInvalidConfig, c.Board.SpawnFourThreshold)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalidConfig)
	}
	if c.Input.SwipeMinDistance < 1 {
		return fmt.Errorf("%w: input.swipe_min_distance must be at least 1", ErrInvalidConfig)
	}
	if c.Input.SwipeRowScale < 1 {
		return fmt.Errorf("%w: input.swipe_row_scale must be at least 1", ErrInvalidConfig)
	}
	return nil
}
