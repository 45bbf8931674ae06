package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
)

// KeyMap holds the game key bindings. It centralizes key handling and
// feeds the help footer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// NewKeyMap builds the bindings from the configured keys.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:         binding(cfg.Up, "up"),
		Down:       binding(cfg.Down, "down"),
		Left:       binding(cfg.Left, "left"),
		Right:      binding(cfg.Right, "right"),
		Pause:      binding(cfg.Pause, "pause"),
		Restart:    binding(cfg.Restart, "new game"),
		Quit:       binding(cfg.Quit, "quit"),
		Screenshot: binding([]string{"ctrl+s"}, "screenshot"),
		Help:       binding([]string{"?"}, "more keys"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for keys that are not game actions.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
