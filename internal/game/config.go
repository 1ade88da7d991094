package game

import (
	"fmt"
)

type GameConfig struct {
	GridSize int
	Seed     int64
}

func (c GameConfig) Validate(maxGridSize int) error {
	if c.GridSize < 1 || c.GridSize > maxGridSize {
		return fmt.Errorf("%w: grid size must be between 1 and %d, got %d", ErrInvalidGridSize, maxGridSize, c.GridSize)
	}
	return nil
}
