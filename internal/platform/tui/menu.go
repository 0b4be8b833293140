package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/registry"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Saved  bool // A resumable session exists for the player
}

// MenuKeyMap defines the key bindings for the mode picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model over the registered modes.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	saved := savedSlots(store)
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Saved:  saved[SlotName(cfg.Player, g.ID)],
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

// savedSlots returns the names of slots holding a saved session.
func savedSlots(store *storage.Store) map[string]bool {
	names := make(map[string]bool)
	if store == nil {
		return names
	}
	saved, err := store.SavedGames(context.Background())
	if err != nil {
		return names
	}
	for _, s := range saved {
		names[s.Slot] = true
	}
	return names
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  H E X M A T C H  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Playing as %s", m.config.Player), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		suffix := ""
		if item.Saved {
			suffix = " (resume)"
		}
		b.WriteString(centerText(cursor+item.Title+suffix, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult is the outcome of one pass through the menu.
type MenuResult struct {
	GameID          string
	Quit            bool
	WantsScoreboard bool
	Config          core.RuntimeConfig
}

// RunMenu shows the mode picker and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true, Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, nil
	}
	res := MenuResult{
		Quit:            m.quitting,
		WantsScoreboard: m.openScoreboard,
		Config:          m.config,
	}
	if m.selected != nil {
		res.GameID = m.selected.GameID
	}
	return res, nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
