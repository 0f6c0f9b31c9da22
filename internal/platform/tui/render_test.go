package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(2, 1, "12", core.ColorBlue)
	s.SetColored(11, 2, '*', core.ColorBrightRed)
	s.SetColored(0, 2, '?', core.Color(200)) // Unknown colors fall back to default

	if got := ansi.Strip(RenderScreen(s)); got != s.String() {
		t.Errorf("RenderScreen text = %q, expected %q", got, s.String())
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
