package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, false},
		{"too tall", func(c *Config) { c.Board.Height = MaxBoardSide + 1 }, false},
		{"negative density", func(c *Config) { c.Board.MinePercent = -1 }, false},
		{"full density", func(c *Config) { c.Board.MinePercent = 100 }, true},
		{"narrow cell", func(c *Config) { c.Display.CellWidth = 2 }, false},
		{"tall cell", func(c *Config) { c.Display.CellHeight = 4 }, false},
		{"negative spacing", func(c *Config) { c.Display.SpacingY = -1 }, false},
		{"zero redraw", func(c *Config) { c.Display.RedrawHz = 0 }, false},
		{"fast redraw", func(c *Config) { c.Display.RedrawHz = 60 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 30\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Width != 30 {
		t.Errorf("Width = %d, expected 30", cfg.Board.Width)
	}
	if cfg.Board.Height != Default().Board.Height || cfg.Display != Default().Display {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("board: [")); err == nil {
		t.Error("Parse should reject malformed YAML")
	}
	_, err := Parse([]byte("board:\n  mine_percent: 150\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("Parse invalid = %v, expected config: error", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 8\n  height: 8\n  mine_percent: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 8 || cfg.Board.MinePercent != 10 {
		t.Errorf("Board = %+v, expected 8x8 at 10%%", cfg.Board)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing explicit path")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LocalPath), []byte("display:\n  redraw_hz: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.RedrawHz != 10 {
		t.Errorf("RedrawHz = %d, expected 10", cfg.Display.RedrawHz)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{Width: 30, MinePercent: -1})

	if cfg.Board.Width != 30 {
		t.Errorf("Width = %d, expected 30", cfg.Board.Width)
	}
	if cfg.Board.Height != Default().Board.Height {
		t.Errorf("Height changed to %d", cfg.Board.Height)
	}
	if cfg.Board.MinePercent != Default().Board.MinePercent {
		t.Errorf("MinePercent changed to %d", cfg.Board.MinePercent)
	}

	cfg.Apply(Overrides{MinePercent: 0})
	if cfg.Board.MinePercent != 0 {
		t.Errorf("MinePercent = %d, expected 0", cfg.Board.MinePercent)
	}
}

func TestMinesConfig(t *testing.T) {
	mc := Default().MinesConfig(99)
	if mc.Width != 16 || mc.Height != 9 || mc.MinePercent != 20 || mc.Seed != 99 {
		t.Errorf("MinesConfig = %+v", mc)
	}
	if err := mc.Validate(); err != nil {
		t.Errorf("MinesConfig().Validate() = %v", err)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "mine_percent: 20") {
		t.Errorf("Marshal output missing mine_percent:\n%s", data)
	}
}
