// Package tui provides the Bubble Tea integration for the minesweeper
// game. It handles the terminal UI loop, input mapping, the scoreboard
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw of the clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. The game only changes on input, so ticks exist to keep
// the timer on screen current.
func tickCmd(hz int) tea.Cmd {
	interval := time.Second / time.Duration(max(hz, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
