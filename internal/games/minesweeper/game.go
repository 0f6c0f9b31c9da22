// Package minesweeper adapts the mines board engine to the platform: it
// owns the cursor, hover and press state, turns semantic actions and
// pointer events into engine calls, and draws the board into a screen.
package minesweeper

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Screen furniture around the grid.
const (
	titleRow  = 0
	hudRow    = 1
	boxTopRow = 2
	padX      = 2 // Border plus one blank column
	statusGap = 1 // Blank row between box and status line
)

// Game is a single minesweeper session.
type Game struct {
	cfg   config.Config
	clock func() time.Time
	fixed []mines.Point // Mine layout used instead of random generation
	board *mines.Board

	cursor   mines.Point
	hover    mines.Point
	hovering bool
	press    mines.Point
	pressing bool

	screenW  int
	screenH  int
	layout   Layout
	tooSmall bool
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the time source of every board the game creates.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.clock = now
	}
}

// WithMines fixes the mine layout instead of generating one. Restart
// keeps the same layout.
func WithMines(points ...mines.Point) Option {
	return func(g *Game) {
		g.fixed = append([]mines.Point{}, points...)
	}
}

// New creates a game for the given configuration. Reset must be called
// before the game is used.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Variant describes the board parameters, e.g. "16x9@20%". Scores are
// only comparable within one variant.
func (g *Game) Variant() string {
	b := g.cfg.Board
	return fmt.Sprintf("%dx%d@%d%%", b.Width, b.Height, b.MinePercent)
}

// Reset builds a fresh board seeded from cfg and adopts its screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	var opts []mines.Option
	if g.clock != nil {
		opts = append(opts, mines.WithClock(g.clock))
	}
	var (
		board *mines.Board
		err   error
	)
	if g.fixed != nil {
		board, err = mines.NewWithMines(g.cfg.Board.Width, g.cfg.Board.Height, g.fixed, opts...)
	} else {
		board, err = mines.New(g.cfg.MinesConfig(cfg.Seed), opts...)
	}
	if err != nil {
		return fmt.Errorf("minesweeper: %w", err)
	}

	g.board = board
	g.cursor = mines.Point{X: board.Width() / 2, Y: board.Height() / 2}
	g.clearTransient()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Restart replaces the layout on the current board.
func (g *Game) Restart() {
	g.board.Reset()
	g.clearTransient()
}

func (g *Game) clearTransient() {
	g.pressing = false
}

// Resize recomputes the layout for a new screen size without touching the
// board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.board == nil {
		return
	}

	d := g.cfg.Display
	l := Layout{
		CellW:    d.CellWidth,
		CellH:    d.CellHeight,
		SpacingX: d.SpacingX,
		SpacingY: d.SpacingY,
		Cols:     g.board.Width(),
		Rows:     g.board.Height(),
	}
	bounds := l.Bounds()
	boxW := bounds.W + 2*padX
	l.OriginX = (w-boxW)/2 + padX
	l.OriginY = boxTopRow + 1
	g.layout = l

	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// MinSize returns the smallest screen that fits the board and HUD.
func (g *Game) MinSize() (int, int) {
	bounds := g.layout.Bounds()
	w := bounds.W + 2*padX
	h := boxTopRow + bounds.H + 2 + statusGap + 1
	return w, h
}

// Board exposes the engine for read-only queries.
func (g *Game) Board() *mines.Board {
	return g.board
}

// Layout returns the current cell layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() mines.Point {
	return g.cursor
}

// Step applies one frame of semantic input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State(), Changed: true}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	changed := false
	if in.Has(core.ActionReveal) {
		changed = g.reveal(g.cursor)
	}
	if in.Has(core.ActionFlag) {
		changed = g.toggleFlag(g.cursor) || changed
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// HandlePointer applies a mouse event. A left press arms the cell under
// the pointer and the matching release reveals it; releasing anywhere
// else cancels. A right press toggles the flag at once.
func (g *Game) HandlePointer(ev core.PointerEvent) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	x, y, ok := g.layout.CellAt(ev.X, ev.Y)
	p := mines.Point{X: x, Y: y}
	g.hover, g.hovering = p, ok

	changed := false
	switch ev.Kind {
	case core.PointerPress:
		switch ev.Button {
		case core.ButtonLeft:
			g.press, g.pressing = p, ok
			if ok {
				g.cursor = p
			}
		case core.ButtonRight:
			if ok {
				g.cursor = p
				changed = g.toggleFlag(p)
			}
		}
	case core.PointerRelease:
		if g.pressing && ok && p == g.press {
			changed = g.reveal(p)
		}
		g.pressing = false
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	status := g.board.Status()
	return core.GameState{
		GameOver: status.Terminal(),
		Won:      status == mines.Won,
		Seconds:  g.board.ElapsedSeconds(),
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.board.Width()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.board.Height()-1)
}

func (g *Game) reveal(p mines.Point) bool {
	changed, err := g.board.Reveal(p.X, p.Y)
	return err == nil && changed
}

func (g *Game) toggleFlag(p mines.Point) bool {
	changed, err := g.board.ToggleFlag(p.X, p.Y)
	return err == nil && changed
}
