package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// helpRows is the number of terminal rows reserved under the game screen.
const helpRows = 1

// maxPendingKeys bounds the key queue; keys beyond it are dropped.
const maxPendingKeys = 32

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	pending    []core.Action // Keys not yet fed to the game, oldest first
	gameState  core.GameState
	quitting   bool
	done       bool // Game asked to quit
	embedded   bool // Leave the program running when the game quits
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer sets the renderer used by View.
func WithRenderer(r *ScreenRenderer) ModelOption {
	return func(m *Model) {
		if r != nil {
			m.renderer = r
		}
	}
}

// withEmbedded keeps the program alive when the game quits, so a parent
// model can take over.
func withEmbedded() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		config:     cfg,
		renderer:   defaultScreenRenderer,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.config.ScreenH = max(0, cfg.ScreenH-helpRows)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	action, forceQuit := m.keyMapper.MapKey(msg)
	if forceQuit {
		m.logger.Info("interrupted", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	// Unbound keys still answer "no" to an open prompt.
	if action == core.ActionNone {
		action = core.ActionCancel
	}
	if len(m.pending) < maxPendingKeys {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleResize keeps the board and forwards the new size to the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpRows)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	// One key per tick, in the order they arrived.
	m.inputFrame.Clear()
	if len(m.pending) > 0 {
		m.inputFrame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.Restarted:
		m.logger.Info("game restarted", "game", m.game.ID(), "previous_score", prev.Score)
	case m.gameState.GameOver && !prev.GameOver:
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"max_tile", m.gameState.MaxTile,
		)
	}

	if m.gameState.Quit {
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		m.done = true
		if m.embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Done reports whether the game asked to quit.
func (m Model) Done() bool {
	return m.done
}

// Interrupted reports whether the player force-quit with ctrl+c.
func (m Model) Interrupted() bool {
	return m.quitting && !m.done
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) (core.GameState, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
