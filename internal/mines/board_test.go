package mines

import (
	"errors"
	"testing"
	"time"
)

// bruteForceCount counts mines around (x, y) straight from ContentAt.
func bruteForceCount(t *testing.T, b *Board, x, y int) int {
	t.Helper()
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c, err := b.ContentAt(x+dx, y+dy)
			if err != nil {
				continue
			}
			if c.IsMine() {
				n++
			}
		}
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	b, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if b.Width() != 16 || b.Height() != 9 {
		t.Errorf("size = %dx%d, expected 16x9", b.Width(), b.Height())
	}
	if b.Status() != InProgress {
		t.Errorf("Status() = %v, expected InProgress", b.Status())
	}

	for x := range b.Width() {
		for y := range b.Height() {
			s, err := b.StateAt(x, y)
			if err != nil {
				t.Fatalf("StateAt(%d, %d) failed: %v", x, y, err)
			}
			if s != Hidden {
				t.Errorf("cell (%d, %d) = %v, expected Hidden", x, y, s)
			}
		}
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 9, MinePercent: 20}},
		{"negative height", Config{Width: 16, Height: -1, MinePercent: 20}},
		{"negative density", Config{Width: 16, Height: 9, MinePercent: -1}},
		{"density above 100", Config{Width: 16, Height: 9, MinePercent: 101}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New(%+v) error = %v, expected ErrInvalidConfig", tc.cfg, err)
			}
		})
	}
}

func TestNeighborCountsMatchBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b, err := New(Config{Width: 12, Height: 7, MinePercent: 30, Seed: seed})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		for x := range b.Width() {
			for y := range b.Height() {
				c, _ := b.ContentAt(x, y)
				if c.IsMine() {
					continue
				}
				n := c.NeighborMines()
				if n < 0 || n > MaxNeighbors {
					t.Fatalf("seed %d: count %d at (%d, %d) outside 0..8", seed, n, x, y)
				}
				if expected := bruteForceCount(t, b, x, y); n != expected {
					t.Errorf("seed %d: count at (%d, %d) = %d, expected %d", seed, x, y, n, expected)
				}
			}
		}
	}
}

func TestMineCountMatchesLayout(t *testing.T) {
	b, err := New(Config{Width: 16, Height: 9, MinePercent: 20, Seed: 7})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	mines := 0
	for x := range b.Width() {
		for y := range b.Height() {
			if c, _ := b.ContentAt(x, y); c.IsMine() {
				mines++
			}
		}
	}
	if mines != b.MineCount() {
		t.Errorf("MineCount() = %d, counted %d", b.MineCount(), mines)
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	cfg := Config{Width: 16, Height: 9, MinePercent: 20, Seed: 42}
	a, _ := New(cfg)
	b, _ := New(cfg)

	for x := range a.Width() {
		for y := range a.Height() {
			ca, _ := a.ContentAt(x, y)
			cb, _ := b.ContentAt(x, y)
			if ca != cb {
				t.Fatalf("layouts differ at (%d, %d): %v vs %v", x, y, ca, cb)
			}
		}
	}
}

func TestDensityExtremes(t *testing.T) {
	empty, _ := New(Config{Width: 8, Height: 8, MinePercent: 0, Seed: 1})
	if empty.MineCount() != 0 {
		t.Errorf("0%% density placed %d mines", empty.MineCount())
	}

	full, _ := New(Config{Width: 8, Height: 8, MinePercent: 100, Seed: 1})
	if full.MineCount() != 64 {
		t.Errorf("100%% density placed %d mines, expected 64", full.MineCount())
	}
}

func TestNewWithMinesOutOfRange(t *testing.T) {
	_, err := NewWithMines(4, 4, []Point{{X: 4, Y: 0}})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewWithMines error = %v, expected ErrOutOfRange", err)
	}
}

func TestQueriesOutOfRange(t *testing.T) {
	b, _ := NewWithMines(4, 4, nil)

	points := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, p := range points {
		if _, err := b.ContentAt(p.X, p.Y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ContentAt(%d, %d) error = %v", p.X, p.Y, err)
		}
		if _, err := b.StateAt(p.X, p.Y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("StateAt(%d, %d) error = %v", p.X, p.Y, err)
		}
		if changed, err := b.Reveal(p.X, p.Y); changed || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Reveal(%d, %d) = %v, %v", p.X, p.Y, changed, err)
		}
		if changed, err := b.ToggleFlag(p.X, p.Y); changed || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToggleFlag(%d, %d) = %v, %v", p.X, p.Y, changed, err)
		}
	}
}

func TestResetDiscardsState(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }

	b, _ := NewWithMines(4, 4, []Point{{0, 0}, {3, 3}}, WithClock(clock))
	b.ToggleFlag(3, 3)
	b.Reveal(0, 0)
	now = now.Add(30 * time.Second)

	if b.Status() != Lost {
		t.Fatalf("Status() = %v, expected Lost", b.Status())
	}

	b.Reset()

	if b.Status() != InProgress {
		t.Errorf("after Reset Status() = %v, expected InProgress", b.Status())
	}
	if b.FlagCount() != 0 || b.RevealedCount() != 0 {
		t.Errorf("after Reset flags=%d revealed=%d, expected 0/0", b.FlagCount(), b.RevealedCount())
	}
	if b.ElapsedSeconds() != 0 {
		t.Errorf("after Reset ElapsedSeconds() = %d, expected 0", b.ElapsedSeconds())
	}
	if b.MineCount() != 2 {
		t.Errorf("after Reset MineCount() = %d, expected 2", b.MineCount())
	}
}

func TestResetHidesEveryCell(t *testing.T) {
	b, _ := New(Config{Width: 30, Height: 16, MinePercent: 20, Seed: 3})
	before := b.String()
	b.Reveal(0, 0)

	b.Reset()

	for x := range b.Width() {
		for y := range b.Height() {
			if s, _ := b.StateAt(x, y); s != Hidden {
				t.Fatalf("after Reset cell (%d, %d) = %v, expected Hidden", x, y, s)
			}
		}
	}
	if b.String() != before {
		t.Errorf("hidden render changed shape:\n%s\nvs\n%s", b.String(), before)
	}
}

func TestElapsedSeconds(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	b, _ := NewWithMines(2, 1, []Point{{0, 0}}, WithClock(clock))

	now = now.Add(5*time.Second + 400*time.Millisecond)
	if got := b.ElapsedSeconds(); got != 5 {
		t.Errorf("ElapsedSeconds() = %d, expected 5", got)
	}

	// Losing freezes the clock.
	b.Reveal(0, 0)
	now = now.Add(time.Minute)
	if got := b.ElapsedSeconds(); got != 5 {
		t.Errorf("ElapsedSeconds() after loss = %d, expected frozen at 5", got)
	}
}

func TestElapsedSecondsSaturates(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	b, _ := NewWithMines(2, 2, nil, WithClock(clock))
	now = now.Add(3 * time.Hour)

	if got := b.ElapsedSeconds(); got != MaxElapsedSeconds {
		t.Errorf("ElapsedSeconds() = %d, expected %d", got, MaxElapsedSeconds)
	}
}

func TestCellContent(t *testing.T) {
	if !MineContent().IsMine() {
		t.Error("MineContent() should be a mine")
	}
	if MineContent().NeighborMines() != 0 {
		t.Error("mine NeighborMines() should be 0")
	}
	if ClearContent(3).NeighborMines() != 3 {
		t.Error("ClearContent(3) should carry 3")
	}
	if ClearContent(12).NeighborMines() != 8 {
		t.Error("ClearContent should clamp to 8")
	}
	if MineContent().String() != "Mine" || ClearContent(2).String() != "Clear(2)" {
		t.Errorf("String() = %q / %q", MineContent().String(), ClearContent(2).String())
	}
}
