package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Cell glyphs.
const (
	glyphHidden    = '#'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'X'
	glyphZero      = '.'
)

// Faces shown between the counters.
const (
	faceIdle    = ":)"
	facePressed = ":O"
	faceWon     = "B)"
	faceLost    = "X("
)

// NumberColor returns the color of a revealed neighbor count.
func NumberColor(n int) core.Color {
	switch n {
	case 1:
		return core.ColorBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorBrightRed
	case 4:
		return core.ColorMagenta
	case 5:
		return core.ColorRed
	case 6:
		return core.ColorCyan
	case 7:
		return core.ColorGray
	case 8:
		return core.ColorDarkGray
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bounds := g.layout.Bounds()
	box := core.NewRect(bounds.X-padX, boxTopRow, bounds.W+2*padX, bounds.H+2)

	dst.DrawTextCentered(titleRow, "MINESWEEPER", core.ColorBrightCyan)
	g.renderHUD(dst, box)
	dst.DrawBox(box, core.ColorGray)
	g.renderCells(dst)
	g.renderStatus(dst, box.Bottom()+statusGap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.MinSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH), core.ColorDefault)
}

// renderHUD draws the mine counter, face and timer above the box.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	left := counter(g.board.MinesRemaining(), 3)
	right := counter(g.board.ElapsedSeconds(), 4)
	face := g.face()

	dst.DrawTextColored(box.X+1, hudRow, left, core.ColorBrightRed)
	dst.DrawTextColored(box.X+(box.W-len(face))/2, hudRow, face, core.ColorBrightYellow)
	dst.DrawTextColored(box.Right()-1-len(right), hudRow, right, core.ColorBrightRed)
}

func (g *Game) face() string {
	switch g.board.Status() {
	case mines.Won:
		return faceWon
	case mines.Lost:
		return faceLost
	}
	if g.pressing {
		return facePressed
	}
	return faceIdle
}

// counter formats n zero-padded to digits characters, clamped so it
// never grows wider.
func counter(n, digits int) string {
	hi := 1
	for range digits {
		hi *= 10
	}
	n = core.Clamp(n, -(hi/10 - 1), hi-1)
	return fmt.Sprintf("%0*d", digits, n)
}

// renderCells draws every cell plus the cursor and hover markers.
func (g *Game) renderCells(dst *core.Screen) {
	for x := range g.board.Width() {
		for y := range g.board.Height() {
			r := g.layout.CellRect(x, y)
			glyph, color := g.cellGlyph(x, y)

			cx, cy := r.X+r.W/2, r.Y+r.H/2
			dst.SetColored(cx, cy, glyph, color)

			p := mines.Point{X: x, Y: y}
			switch {
			case p == g.cursor:
				dst.SetColored(r.X, cy, '[', core.ColorBrightYellow)
				dst.SetColored(r.Right()-1, cy, ']', core.ColorBrightYellow)
			case g.hovering && p == g.hover:
				dst.SetColored(r.X, cy, '(', core.ColorRed)
				dst.SetColored(r.Right()-1, cy, ')', core.ColorRed)
			}
		}
	}
}

// cellGlyph decides how cell (x, y) looks. Finished games show the mine
// layout: all mines on a loss with wrong flags marked, flags on every
// mine after a win.
func (g *Game) cellGlyph(x, y int) (rune, core.Color) {
	content, _ := g.board.ContentAt(x, y)
	state, _ := g.board.StateAt(x, y)
	status := g.board.Status()

	switch state {
	case mines.Flagged:
		if status == mines.Lost && !content.IsMine() {
			return glyphWrongFlag, core.ColorRed
		}
		return glyphFlag, core.ColorBrightRed

	case mines.Hidden:
		switch {
		case status == mines.Lost && content.IsMine():
			return glyphMine, core.ColorWhite
		case status == mines.Won && content.IsMine():
			return glyphFlag, core.ColorBrightRed
		}
		return glyphHidden, core.ColorGray
	}

	switch {
	case content.IsMine():
		// Only the mine that ended the game is ever revealed.
		return glyphMine, core.ColorBrightRed
	case content.NeighborMines() == 0:
		return glyphZero, core.ColorDarkGray
	default:
		n := content.NeighborMines()
		return rune('0' + n), NumberColor(n)
	}
}

// renderStatus draws the line under the box.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch g.board.Status() {
	case mines.Won:
		msg := fmt.Sprintf("Cleared in %ds! Press r for a new board", g.board.ElapsedSeconds())
		dst.DrawTextCentered(y, msg, core.ColorGreen)
	case mines.Lost:
		dst.DrawTextCentered(y, "BOOM! Press r to try again", core.ColorBrightRed)
	default:
		msg := fmt.Sprintf("%d mines  %d flags", g.board.MineCount(), g.board.FlagCount())
		dst.DrawTextCentered(y, msg, core.ColorDefault)
	}
}
