package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// keyMsg builds the message Bubble Tea sends for a key name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"l", core.ActionRight},
		{" ", core.ActionReveal},
		{"enter", core.ActionReveal},
		{"f", core.ActionFlag},
		{"r", core.ActionRestart},
		{"tab", core.ActionNone},
		{"?", core.ActionNone},
		{"q", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tc.key)); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.PointerEvent
		ok   bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: core.PointerEvent{X: 3, Y: 4, Kind: core.PointerPress, Button: core.ButtonLeft},
			ok:   true,
		},
		{
			name: "right press",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			want: core.PointerEvent{X: 1, Y: 2, Kind: core.PointerPress, Button: core.ButtonRight},
			ok:   true,
		},
		{
			name: "release without button",
			msg:  tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			want: core.PointerEvent{X: 5, Y: 6, Kind: core.PointerRelease, Button: core.ButtonLeft},
			ok:   true,
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionMotion},
			want: core.PointerEvent{X: 7, Y: 8, Kind: core.PointerMove},
			ok:   true,
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			ok:   false,
		},
		{
			name: "middle",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle},
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := pointerEvent(tc.msg)
			if ok != tc.ok {
				t.Fatalf("pointerEvent ok = %v, expected %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("pointerEvent = %+v, expected %+v", got, tc.want)
			}
		})
	}
}
