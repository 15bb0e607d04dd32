package engine

import "fmt"

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	GridSize             int // board is GridSize x GridSize (default 10)
	MaxRounds            int // game ends after this many resolved rounds (default 10)
	EliminationThreshold int // cumulative creature losses before elimination (default 10)
}

func DefaultConfig() GameConfig {
	return GameConfig{
		GridSize:             10,
		MaxRounds:            10,
		EliminationThreshold: 10,
	}
}

// Validate rejects non-positive configuration values.
func (c GameConfig) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("max rounds must be positive, got %d", c.MaxRounds)
	}
	if c.EliminationThreshold <= 0 {
		return fmt.Errorf("elimination threshold must be positive, got %d", c.EliminationThreshold)
	}
	return nil
}
