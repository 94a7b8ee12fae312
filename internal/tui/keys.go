package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	SwitchView key.Binding
	Next       key.Binding
	Prev       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Search     key.Binding
	Sort       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "salir")),
		SwitchView: key.NewBinding(key.WithKeys("ctrl+t", "f2"), key.WithHelp("ctrl+t", "cambiar vista")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente campo")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "campo anterior")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guardar")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bajar")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "eliminar")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ordenar")),
	}
}

// formHelp is shown while a form field has focus.
type formHelp keyMap

func (k formHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel, k.SwitchView, k.Quit}
}

func (k formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listHelp is shown while the card list has focus.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Search, k.Sort, k.SwitchView, k.Quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
