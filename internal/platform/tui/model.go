package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Game is what the platform drives. Implementations hold pure game logic
// with no Bubble Tea dependency; the platform maps input, schedules
// redraws and renders the screen buffer.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Variant names the board parameters results are grouped by.
	Variant() string

	// Reset starts a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig) error

	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)

	// Step applies one frame of semantic input.
	Step(in core.InputFrame) core.StepResult

	// HandlePointer applies a mouse event in screen coordinates.
	HandlePointer(ev core.PointerEvent) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options configures a game session.
type Options struct {
	Runtime  core.RuntimeConfig
	Player   string      // Name results are recorded under
	RedrawHz int         // Timer redraw rate
	Logger   *log.Logger // nil discards logs
}

// GameModel is the Bubble Tea model for one minesweeper screen.
type GameModel struct {
	game      Game
	screen    *core.Screen
	store     *storage.Store
	opts      Options
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	recorded  bool // Whether the current finished game was saved
	quitting  bool
}

// NewGameModel resets the game and wraps it in a model.
func NewGameModel(game Game, store *storage.Store, opts Options) (GameModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:  store,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.help.Width = opts.Runtime.ScreenW

	if err := game.Reset(opts.Runtime); err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}
	m.gameState = game.State()
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m, nil
}

// Init starts the redraw loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.RedrawHz)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.apply(m.game.HandlePointer(ev))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// Nothing to simulate; the next View picks up the clock.
		return m, tickCmd(m.opts.RedrawHz)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		in := core.NewInputFrame()
		in.Set(action)
		m.apply(m.game.Step(in))
	}
	return m, nil
}

// apply tracks the game state and records each finished game once.
func (m *GameModel) apply(res core.StepResult) {
	m.gameState = res.State
	if !m.gameState.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true

	m.logger.Info("game finished",
		"player", m.opts.Player,
		"variant", m.game.Variant(),
		"won", m.gameState.Won,
		"seconds", m.gameState.Seconds,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Player:  m.opts.Player,
		Variant: m.game.Variant(),
		Won:     m.gameState.Won,
		Seconds: m.gameState.Seconds,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Debug("could not record result", "error", err)
	}
}

// resize gives the game everything above the help bar.
func (m *GameModel) resize(w, h int) {
	m.opts.Runtime.ScreenW = w
	m.opts.Runtime.ScreenH = h
	m.help.Width = w

	gameH := max(h-lipgloss.Height(m.help.View(m.keys)), 0)
	m.screen.Resize(w, gameH)
	m.game.Resize(w, gameH)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Keys returns the key bindings in use.
func (m GameModel) Keys() KeyMap {
	return m.keys
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
