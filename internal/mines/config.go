package mines

import (
	"errors"
	"fmt"
)

// Default board parameters.
const (
	DefaultWidth       = 16
	DefaultHeight      = 9
	DefaultMinePercent = 20

	// MaxElapsedSeconds is where the game clock saturates.
	MaxElapsedSeconds = 9999
)

var (
	// ErrOutOfRange is returned by every coordinate-taking call when (x, y)
	// falls outside the grid.
	ErrOutOfRange = errors.New("mines: coordinates out of range")

	// ErrInvalidConfig is returned when a board cannot be built from the
	// given parameters.
	ErrInvalidConfig = errors.New("mines: invalid config")
)

// Config describes how to generate a board.
type Config struct {
	Width       int   // Columns
	Height      int   // Rows
	MinePercent int   // Independent per-cell mine probability, 0..100
	Seed        int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns the classic 16x9 board at 20% density.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinePercent: DefaultMinePercent,
	}
}

// Validate checks that a board can be built from the config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MinePercent < 0 || c.MinePercent > 100 {
		return fmt.Errorf("%w: mine percent %d not in [0,100]", ErrInvalidConfig, c.MinePercent)
	}
	return nil
}

func outOfRange(x, y int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
}
