package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/storage"
)

// SessionModel is the top-level model for one player, locally or over
// SSH: the game screen plus a scoreboard opened with tab.
type SessionModel struct {
	game       GameModel
	scores     ScoreboardModel
	store      *storage.Store
	variant    string
	width      int
	height     int
	showScores bool
	quitting   bool
}

// NewSessionModel starts a game and wraps it in a session.
func NewSessionModel(game Game, store *storage.Store, opts Options) (SessionModel, error) {
	gm, err := NewGameModel(game, store, opts)
	if err != nil {
		return SessionModel{}, err
	}
	return SessionModel{
		game:    gm,
		store:   store,
		variant: game.Variant(),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen. Ticks and resizes always
// reach the game so its redraw loop and layout stay current.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cmd := m.updateGame(msg)
		if m.showScores {
			m.updateScores(msg)
		}
		return m, cmd

	case TickMsg:
		return m, m.updateGame(msg)

	case tea.KeyMsg:
		if !m.showScores && key.Matches(msg, m.game.Keys().Scores) {
			m.scores = NewScoreboardModel(m.store, m.variant, m.width, m.height)
			m.showScores = true
			return m, nil
		}
	}

	if m.showScores {
		cmd := m.updateScores(msg)
		if m.scores.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scores.IsGoingBack() {
			m.showScores = false
		}
		return m, cmd
	}

	cmd := m.updateGame(msg)
	if m.game.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

func (m *SessionModel) updateGame(msg tea.Msg) tea.Cmd {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}
	return cmd
}

func (m *SessionModel) updateScores(msg tea.Msg) tea.Cmd {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}
	return cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}
	return m.game.View()
}

// ShowingScores reports whether the scoreboard is open.
func (m SessionModel) ShowingScores() bool {
	return m.showScores
}

// Game returns the game screen model.
func (m SessionModel) Game() GameModel {
	return m.game
}

// Run starts a local Bubble Tea program for the game.
func Run(game Game, store *storage.Store, opts Options) error {
	model, err := NewSessionModel(game, store, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	_, err = p.Run()
	return err
}
