package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type rootKeyMap struct {
	Quit    key.Binding
	Journal key.Binding
}

var rootKeys = rootKeyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	Journal: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "journal")),
}

type listKeyMap struct {
	Quit      key.Binding
	Focus     key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	FlingUp   key.Binding
	FlingDown key.Binding
	Stop      key.Binding
	Reset     key.Binding
	Grow      key.Binding
	Shrink    key.Binding
}

// bindings without help are covered by the help of their counterpart
var listKeys = listKeyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("⇥", "focus")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓/pgup/pgdn", "scroll")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	PageUp:    key.NewBinding(key.WithKeys("pgup")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown")),
	FlingUp:   key.NewBinding(key.WithKeys("K")),
	FlingDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J/K", "fling")),
	Stop:      key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s", "stop")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Grow:      key.NewBinding(key.WithKeys("+"), key.WithHelp("+/-", "resize")),
	Shrink:    key.NewBinding(key.WithKeys("-")),
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Focus, k.Up, k.FlingDown, k.Stop, k.Reset, k.Grow, rootKeys.Journal}
}

type journalKeyMap struct {
	Back       key.Binding
	Autoscroll key.Binding
	Filter     key.Binding
	Clear      key.Binding
}

var journalKeys = journalKeyMap{
	Back:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "back")),
	Autoscroll: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "autoscroll")),
	Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
}

func (k journalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Autoscroll, k.Filter, k.Clear}
}

var alertKeys = struct {
	Close key.Binding
}{
	Close: key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc/⏎", "close")),
}

// renderHelp renders the help of the enabled bindings for the status bar,
// followed by notes in muted text.
func renderHelp(theme Theme, bindings []key.Binding, notes ...string) string {
	parts := make([]string, 0, len(bindings)+len(notes))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || (h.Key == "" && h.Desc == "") {
			continue
		}
		parts = append(parts, theme.PrimaryTextStyle.Render(h.Key)+" "+theme.MutedTextStyle.Render(h.Desc))
	}
	for _, note := range notes {
		if note != "" {
			parts = append(parts, theme.MutedTextStyle.Render(note))
		}
	}
	return strings.Join(parts, theme.MutedTextStyle.Render(", "))
}
