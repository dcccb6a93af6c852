package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/metrics"
	"github.com/vovakirdan/riffrun/internal/registry"
	"github.com/vovakirdan/riffrun/internal/storage"
)

// Options are the optional collaborators of a Model. Any of them may be nil.
type Options struct {
	Store   *storage.Store
	Metrics *metrics.Recorder
	Logger  *log.Logger
}

// Model is the Bubble Tea model that hosts a single game.
// It handles the tick loop, input mapping, and rendering.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	metrics    *metrics.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	saved      bool // session result already persisted
}

// NewModel creates a new model for running a game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		metrics:    opts.Metrics,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.metrics.SessionStarted(m.game.ID())
	return tickCmd(m.config.TickRate)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the buffer. The running session keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		m.metrics.SessionStarted(m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !wasOver && !result.State.Paused {
		m.metrics.Tick(m.game.ID(), result.Collected)
	}

	if m.gameState.GameOver && !m.saved {
		m.finishSession()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishSession records the final stats once per session.
func (m *Model) finishSession() {
	m.saved = true
	outcome := m.gameState.Outcome()
	stats := m.game.Session()

	m.metrics.SessionFinished(m.game.ID(), outcome)
	m.logger.Info("session finished",
		"game", m.game.ID(),
		"outcome", outcome,
		"notes", stats.Notes,
		"score", stats.Score,
		"seconds", stats.Seconds,
		"max_combo", stats.MaxCombo,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSession(m.game.ID(), outcome, stats); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot saves the current screen buffer to a file.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".riffrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	content := m.screen.String()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the game in a local terminal with mouse tracking enabled.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
