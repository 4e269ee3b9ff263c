package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for the BlockHop editor.
// Bindings carry help text so the footer help view stays in sync.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Move   key.Binding
	Jump   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Run    key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "add move"),
		),
		// "j" doubles as list navigation, but the editor view never
		// scrolls, so the binding is unambiguous per view.
		Jump: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "add jump"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "remove last"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear program"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the picker view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Move, k.Jump, k.Delete, k.Clear},
		{k.Run, k.Quit},
	}
}

// editorHelp is the help line shown while assembling a program.
func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Delete, k.Clear, k.Run, k.Back, k.Quit}
}
