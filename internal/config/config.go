// Package config provides YAML-based configuration loading for the
// minesweeper board and its terminal presentation.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Config contains all configuration for a minesweeper session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid that the engine generates.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinePercent int `yaml:"mine_percent"` // Per-cell mine probability, 0..100
}

// DisplayConfig defines how cells are laid out on the terminal.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Columns per cell, including brackets
	CellHeight int `yaml:"cell_height"` // Rows per cell
	SpacingX   int `yaml:"spacing_x"`   // Blank columns between cells
	SpacingY   int `yaml:"spacing_y"`   // Blank rows between cells
	RedrawHz   int `yaml:"redraw_hz"`   // Timer redraw rate
}

// Display limits.
const (
	MinCellWidth  = 3
	MaxCellWidth  = 7
	MinCellHeight = 1
	MaxCellHeight = 3
	MaxSpacing    = 2
	MinRedrawHz   = 1
	MaxRedrawHz   = 60

	// MaxBoardSide bounds each board dimension so the grid stays drawable.
	MaxBoardSide = 200
)

// Validate checks that every value is usable.
func (c Config) Validate() error {
	b := c.Board
	if b.Width < 1 || b.Width > MaxBoardSide || b.Height < 1 || b.Height > MaxBoardSide {
		return fmt.Errorf("config: board size %dx%d not in 1..%d", b.Width, b.Height, MaxBoardSide)
	}
	if b.MinePercent < 0 || b.MinePercent > 100 {
		return fmt.Errorf("config: mine_percent %d not in 0..100", b.MinePercent)
	}

	d := c.Display
	if d.CellWidth < MinCellWidth || d.CellWidth > MaxCellWidth {
		return fmt.Errorf("config: cell_width %d not in %d..%d", d.CellWidth, MinCellWidth, MaxCellWidth)
	}
	if d.CellHeight < MinCellHeight || d.CellHeight > MaxCellHeight {
		return fmt.Errorf("config: cell_height %d not in %d..%d", d.CellHeight, MinCellHeight, MaxCellHeight)
	}
	if d.SpacingX < 0 || d.SpacingX > MaxSpacing || d.SpacingY < 0 || d.SpacingY > MaxSpacing {
		return fmt.Errorf("config: spacing %d,%d not in 0..%d", d.SpacingX, d.SpacingY, MaxSpacing)
	}
	if d.RedrawHz < MinRedrawHz || d.RedrawHz > MaxRedrawHz {
		return fmt.Errorf("config: redraw_hz %d not in %d..%d", d.RedrawHz, MinRedrawHz, MaxRedrawHz)
	}
	return nil
}

// MinesConfig converts the board section into an engine config.
func (c Config) MinesConfig(seed int64) mines.Config {
	return mines.Config{
		Width:       c.Board.Width,
		Height:      c.Board.Height,
		MinePercent: c.Board.MinePercent,
		Seed:        seed,
	}
}

// Overrides holds CLI flag values. Zero fields leave the config untouched;
// a negative MinePercent means unset.
type Overrides struct {
	Width       int
	Height      int
	MinePercent int
}

// Apply copies every set override into the config.
func (c *Config) Apply(o Overrides) {
	if o.Width > 0 {
		c.Board.Width = o.Width
	}
	if o.Height > 0 {
		c.Board.Height = o.Height
	}
	if o.MinePercent >= 0 {
		c.Board.MinePercent = o.MinePercent
	}
}
