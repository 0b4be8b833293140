package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexmatch/internal/core"
)

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select1   key.Binding
	Select2   key.Binding
	Select3   key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Place     key.Binding
	Undo      key.Binding
	End       key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select1, k.RotateCW, k.Place, k.Undo, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select1, k.Select2, k.Select3},
		{k.RotateCW, k.RotateCCW, k.Place, k.Undo},
		{k.End, k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Select1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "pick tile"),
		),
		Select2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "pick tile 2"),
		),
		Select3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "pick tile 3"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("z/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate left"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end session"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// actionBindings pairs each game action with its binding, in match order.
func (k KeyMap) actionBindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Select1, core.ActionSelect1},
		{k.Select2, core.ActionSelect2},
		{k.Select3, core.ActionSelect3},
		{k.RotateCW, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.Place, core.ActionPlace},
		{k.Undo, core.ActionUndo},
		{k.End, core.ActionEnd},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for _, ab := range k.actionBindings() {
		if key.Matches(msg, ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
