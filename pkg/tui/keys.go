package tui

import "github.com/charmbracelet/bubbles/key"

// CommonKeys defines the keybindings shared by hearthplan TUIs.
type CommonKeys struct {
	Quit   key.Binding
	Back   key.Binding
	Select key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// NewCommonKeys returns the canonical hearthplan keybindings.
func NewCommonKeys() CommonKeys {
	return CommonKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Next: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev step"),
		),
	}
}

// HelpLine renders a one-line hint for the common keys.
func HelpLine(keys CommonKeys) string {
	parts := []string{
		keys.Select.Help().Key + ": " + keys.Select.Help().Desc,
		keys.Back.Help().Key + ": " + keys.Back.Help().Desc,
		keys.Quit.Help().Key + ": " + keys.Quit.Help().Desc,
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "  "
		}
		out += p
	}
	return out
}
