// Package mines implements the Minesweeper board engine: mine placement,
// neighbor counts, chain reveal, flag toggling and win/loss tracking.
// It has no UI dependencies; presentation layers query it once per frame
// and drive it through Reveal, ToggleFlag and Reset.
package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// CellState is the player-visible state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Flagged:
		return "Flagged"
	case Revealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// CellContent is what a cell holds: either a mine, or a clear cell
// carrying the number of mines in its Moore neighborhood (0..8).
type CellContent struct {
	mine      bool
	neighbors uint8
}

// MaxNeighbors is the largest possible neighbor mine count.
const MaxNeighbors = 8

// MineContent returns the content of a mined cell.
func MineContent() CellContent {
	return CellContent{mine: true}
}

// ClearContent returns the content of a clear cell with n neighboring mines.
// n is clamped to 0..8.
func ClearContent(n int) CellContent {
	return CellContent{neighbors: uint8(core.Clamp(n, 0, MaxNeighbors))}
}

// IsMine reports whether the cell holds a mine.
func (c CellContent) IsMine() bool {
	return c.mine
}

// NeighborMines returns the neighbor mine count of a clear cell.
// Always 0 for mines.
func (c CellContent) NeighborMines() int {
	if c.mine {
		return 0
	}
	return int(c.neighbors)
}

func (c CellContent) String() string {
	if c.mine {
		return "Mine"
	}
	return fmt.Sprintf("Clear(%d)", c.neighbors)
}

// Status is the overall game status. It is derived from the board and
// cannot be set directly.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status is Won or Lost.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}
