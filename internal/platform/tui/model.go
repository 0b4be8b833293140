package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/registry"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	slot       *loggedSlot
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. Games that
// persist their session get a slot named after the player and mode.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	if saver, ok := game.(registry.Saver); ok {
		if slot := newLoggedSlot(store, cfg.Player, game.ID(), logger); slot != nil {
			m.slot = slot
			saver.AttachSlot(slot)
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "player", m.config.Player, "resumed", m.game.State().Resumed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session closed", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns left clicks inside the game area into pointer input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.inputFrame.SetClick(msg.X, msg.Y)
	return m, nil
}

// handleResize processes window resize events. The help footer takes the
// bottom rows and the game gets the rest.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.config.ScreenW = width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	// Games without resize support start over at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// gameHeight returns the rows left for the game above the help footer.
func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "game", m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	// The game drops its save at game over, which renews the slot session
	sessionID := ""
	if m.slot != nil {
		sessionID = m.slot.SessionID()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, n := range result.Notices {
		m.logger.Debug("notice", "game", m.game.ID(), "msg", n)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.recordScore(sessionID)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the final score of a session.
func (m Model) recordScore(sessionID string) {
	m.logger.Info("session over", "game", m.game.ID(), "score", m.gameState.Score, "session", sessionID)
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(context.Background(), storage.ScoreEntry{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Player:    m.config.Player,
		SessionID: sessionID,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".hexmatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select and place tiles
	)

	_, err := p.Run()
	return err
}

// OpenLogFile returns a logger writing to path, creating its directory.
// The caller closes the returned file.
func OpenLogFile(path string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexmatch",
	})
	return logger, f, nil
}
