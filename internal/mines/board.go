package mines

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
	"time"
)

// Board owns the whole game state: cell contents, cell states, status and
// the game clock. Cells are indexed [x][y].
//
// A Board is not safe for concurrent use. Callers must serialize access,
// e.g. by driving it from a single event loop.
type Board struct {
	width       int
	height      int
	minePercent int
	layout      []Point // Fixed mine layout; nil for random generation

	content [][]CellContent
	state   [][]CellState

	status   Status
	mines    int
	flags    int
	revealed int

	rng        *rand.Rand
	now        func() time.Time
	startedAt  time.Time
	finishedAt time.Time
}

// Option customizes a Board at construction.
type Option func(*Board)

// WithClock replaces the time source used for elapsed-time tracking.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// New builds a board with a fresh random mine layout.
func New(cfg Config, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := &Board{
		width:       cfg.Width,
		height:      cfg.Height,
		minePercent: cfg.MinePercent,
		rng:         rand.New(rand.NewSource(seed)),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.Reset()
	return b, nil
}

// NewWithMines builds a board with mines at exactly the given points.
// Reset on such a board restores the same layout.
func NewWithMines(width, height int, mines []Point, opts ...Option) (*Board, error) {
	if err := (Config{Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		width:  width,
		height: height,
		layout: make([]Point, 0, len(mines)),
		now:    time.Now,
	}
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, outOfRange(p.X, p.Y)
		}
		b.layout = append(b.layout, p)
	}
	for _, opt := range opts {
		opt(b)
	}

	b.Reset()
	return b, nil
}

// Reset discards all state and generates a new board: a new random layout
// (or the fixed layout again), every cell Hidden, and a restarted clock.
func (b *Board) Reset() {
	b.allocate()

	if b.layout != nil {
		for _, p := range b.layout {
			b.content[p.X][p.Y] = MineContent()
		}
	} else {
		b.placeRandom()
	}
	b.countNeighbors()

	b.status = InProgress
	b.flags = 0
	b.revealed = 0
	b.startedAt = b.now()
	b.finishedAt = time.Time{}
}

// allocate creates zeroed content and state grids.
func (b *Board) allocate() {
	b.content = make([][]CellContent, b.width)
	b.state = make([][]CellState, b.width)
	for x := range b.width {
		b.content[x] = make([]CellContent, b.height)
		b.state[x] = make([]CellState, b.height)
	}
}

// placeRandom rolls each cell independently against minePercent.
func (b *Board) placeRandom() {
	for x := range b.width {
		for y := range b.height {
			if b.rng.Intn(100) < b.minePercent {
				b.content[x][y] = MineContent()
			}
		}
	}
}

// countNeighbors fills in the neighbor count of every clear cell and
// recomputes the mine total.
func (b *Board) countNeighbors() {
	b.mines = 0
	for x := range b.width {
		for y := range b.height {
			if b.content[x][y].IsMine() {
				b.mines++
				continue
			}
			n := 0
			for p := range b.neighbors(x, y) {
				if b.content[p.X][p.Y].IsMine() {
					n++
				}
			}
			b.content[x][y] = ClearContent(n)
		}
	}
}

// neighbors yields the in-bounds Moore neighbors of (x, y).
func (b *Board) neighbors(x, y int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !b.InBounds(nx, ny) {
					continue
				}
				if !yield(Point{X: nx, Y: ny}) {
					return
				}
			}
		}
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) is a cell of this board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ContentAt returns the content of cell (x, y).
func (b *Board) ContentAt(x, y int) (CellContent, error) {
	if !b.InBounds(x, y) {
		return CellContent{}, outOfRange(x, y)
	}
	return b.content[x][y], nil
}

// StateAt returns the state of cell (x, y).
func (b *Board) StateAt(x, y int) (CellState, error) {
	if !b.InBounds(x, y) {
		return Hidden, outOfRange(x, y)
	}
	return b.state[x][y], nil
}

// Status returns the current game status.
func (b *Board) Status() Status {
	return b.status
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return b.mines
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return b.flags
}

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int {
	return b.revealed
}

// MinesRemaining returns mines minus flags. Goes negative when the player
// over-flags, like the classic counter.
func (b *Board) MinesRemaining() int {
	return b.mines - b.flags
}

// Elapsed returns the time since the game started, frozen once the game
// is won or lost.
func (b *Board) Elapsed() time.Duration {
	end := b.finishedAt
	if !b.status.Terminal() {
		end = b.now()
	}
	d := end.Sub(b.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedSeconds returns whole elapsed seconds, saturating at
// MaxElapsedSeconds.
func (b *Board) ElapsedSeconds() int {
	secs := b.Elapsed() / time.Second
	if secs > MaxElapsedSeconds {
		return MaxElapsedSeconds
	}
	return int(secs)
}

// String renders the board for debugging: '#' hidden, 'F' flagged,
// '*' revealed mine, '.' revealed zero, digits otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.width {
			switch b.state[x][y] {
			case Hidden:
				sb.WriteByte('#')
			case Flagged:
				sb.WriteByte('F')
			case Revealed:
				c := b.content[x][y]
				switch {
				case c.IsMine():
					sb.WriteByte('*')
				case c.NeighborMines() == 0:
					sb.WriteByte('.')
				default:
					fmt.Fprintf(&sb, "%d", c.NeighborMines())
				}
			}
		}
	}
	return sb.String()
}
