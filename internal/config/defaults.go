package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// Default returns the hardcoded configuration: the classic 16x9 board at
// 20% density with three-column cells.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:       mines.DefaultWidth,
			Height:      mines.DefaultHeight,
			MinePercent: mines.DefaultMinePercent,
		},
		Display: DisplayConfig{
			CellWidth:  3,
			CellHeight: 1,
			SpacingX:   1,
			SpacingY:   0,
			RedrawHz:   4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
