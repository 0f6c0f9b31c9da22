package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// Layout places board cells on the screen. Cells are CellW x CellH
// characters, separated by SpacingX blank columns and SpacingY blank rows,
// with cell (0, 0) at (OriginX, OriginY).
type Layout struct {
	OriginX, OriginY   int
	CellW, CellH       int
	SpacingX, SpacingY int
	Cols, Rows         int
}

// pitch returns the distance between the starts of adjacent cells.
func (l Layout) pitch() (int, int) {
	return l.CellW + l.SpacingX, l.CellH + l.SpacingY
}

// CellAt maps a screen position to the cell under it. Positions in the
// gap between cells or outside the grid report ok=false.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}
	dx, dy := px-l.OriginX, py-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}

	pitchX, pitchY := l.pitch()
	x, y = dx/pitchX, dy/pitchY
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	if dx%pitchX >= l.CellW || dy%pitchY >= l.CellH {
		return 0, 0, false
	}
	return x, y, true
}

// CellRect returns the screen rectangle of cell (x, y).
func (l Layout) CellRect(x, y int) core.Rect {
	pitchX, pitchY := l.pitch()
	return core.NewRect(l.OriginX+x*pitchX, l.OriginY+y*pitchY, l.CellW, l.CellH)
}

// Bounds returns the rectangle covering every cell, without trailing spacing.
func (l Layout) Bounds() core.Rect {
	pitchX, pitchY := l.pitch()
	w := max(l.Cols*pitchX-l.SpacingX, 0)
	h := max(l.Rows*pitchY-l.SpacingY, 0)
	return core.NewRect(l.OriginX, l.OriginY, w, h)
}
