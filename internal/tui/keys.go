package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Detail pane scrolling
	DetailUp   key.Binding
	DetailDown key.Binding

	// Actions
	Search       key.Binding
	Submit       key.Binding
	FocusSearch  key.Binding
	Filter       key.Binding
	ToggleDetail key.Binding
	OpenImage    key.Binding
	OpenVideo    key.Binding
	OpenSource   key.Binding
	Escape       key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),

		DetailUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "scroll recipe up"),
		),
		DetailDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "scroll recipe down"),
		),

		// Actions
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "new search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ToggleDetail: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle recipe"),
		),
		OpenImage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		OpenVideo: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "open video"),
		),
		OpenSource: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "open source"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// focusHelp exposes the bindings that apply to one focus area
type focusHelp struct {
	keys  KeyMap
	focus Focus
}

var _ help.KeyMap = focusHelp{}

// ShortHelp implements help.KeyMap
func (h focusHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.focus {
	case FocusInput:
		return []key.Binding{k.Search, k.Escape, k.ToggleDetail, k.ForceQuit}
	case FocusFilter:
		return []key.Binding{k.Submit, k.Escape}
	default:
		return []key.Binding{k.Up, k.Down, k.OpenImage, k.Filter, k.FocusSearch, k.ToggleDetail, k.Help, k.Quit}
	}
}

// FullHelp implements help.KeyMap
func (h focusHelp) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.focus {
	case FocusInput, FocusFilter:
		return [][]key.Binding{h.ShortHelp()}
	default:
		return [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
			{k.OpenImage, k.OpenVideo, k.OpenSource},
			{k.ToggleDetail, k.DetailUp, k.DetailDown},
			{k.Filter, k.FocusSearch, k.Escape, k.Help, k.Quit},
		}
	}
}
