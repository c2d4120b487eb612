package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes plain-text screenshots.
const DefaultScreenshotDir = "~/.tui-snake/screenshots"

// Deps are the collaborators a Model hands game output to.
// All fields are optional.
type Deps struct {
	Store         *storage.Store // Run history
	Player        audio.Player   // Cue playback
	Logger        *log.Logger    // Step errors and lifecycle events
	ScreenshotDir string         // Empty disables screenshots
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     audio.Player
	logger     *log.Logger
	shotDir    string
	config     core.RuntimeConfig
	tickRate   int
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, deps Deps) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	player := deps.Player
	if player == nil {
		player = audio.Nop{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = game.TickRate()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      deps.Store,
		player:     player,
		logger:     logger,
		shotDir:    deps.ScreenshotDir,
		config:     cfg,
		tickRate:   tickRate,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "variant", m.game.ID(), "tick_rate", m.tickRate, "seed", m.config.Seed)
	return tickCmd(m.tickRate)
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

// handleKey queues the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Debug("interrupted", "variant", m.game.ID())
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the screen buffer matched to the terminal.
// Game state survives: the board has a fixed size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionMute) {
		m.logger.Debug("music toggle requested", "variant", m.game.ID())
	}
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	for _, c := range result.Cues {
		m.player.Play(c)
	}
	if result.Err != nil {
		m.logger.Warn("step error", "variant", m.game.ID(), "error", result.Err)
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.recordRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// recordRun stores the finished run in the history database.
func (m Model) recordRun() {
	reporter, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	summary, ok := reporter.LastRun()
	if !ok {
		return
	}

	m.logger.Info("run finished",
		"variant", m.game.ID(),
		"score", summary.Score,
		"length", summary.Length,
		"duration", summary.Duration.Round(time.Second),
		"reason", summary.EndReason,
	)

	if m.store == nil {
		return
	}
	run, err := m.store.SaveRun(storage.Run{
		Variant:   m.game.ID(),
		Score:     summary.Score,
		Length:    summary.Length,
		Duration:  summary.Duration,
		EndReason: summary.EndReason,
		CreatedAt: m.config.Now(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", run.ID)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", errors.New("screenshots disabled")
	}
	dir, err := config.ExpandHome(m.shotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	m.game.Render(m.screen)

	timestamp := m.config.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, deps Deps) error {
	model := NewModel(game, cfg, deps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
