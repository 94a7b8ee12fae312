package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adso-sena/agenda/internal/contacts"
)

// Card labels.
const (
	LabelPhone  = "Tel: "
	LabelEmail  = "Correo: "
	LabelEdit   = "Editar"
	LabelDelete = "Eliminar"
)

// Card renders one contact. It keeps no state of its own: the actions forward
// the contact id to the callbacks supplied by the caller.
type Card struct {
	Contact  contacts.Contact
	Selected bool
	OnEdit   func(id string) tea.Cmd
	OnDelete func(id string) tea.Cmd
}

// Edit fires the edit action.
func (c Card) Edit() tea.Cmd {
	if c.OnEdit == nil {
		return nil
	}
	return c.OnEdit(c.Contact.ID)
}

// Delete fires the delete action.
func (c Card) Delete() tea.Cmd {
	if c.OnDelete == nil {
		return nil
	}
	return c.OnDelete(c.Contact.ID)
}

// Render draws the card with the given styles and outer width (0 means natural width).
func (c Card) Render(st Styles, width int) string {
	var b strings.Builder

	name := st.CardName.Render(c.Contact.Nombre)
	if c.Contact.Etiqueta != "" {
		name += " " + st.Badge.Render(c.Contact.Etiqueta)
	}
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(LabelPhone + c.Contact.Telefono)
	b.WriteString("\n")
	b.WriteString(LabelEmail + c.Contact.Correo)
	if c.Contact.Empresa != "" {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(c.Contact.Empresa))
	}
	b.WriteString("\n")
	b.WriteString(st.Link.Render("[e] "+LabelEdit) + "  " + st.Link.Render("[d] "+LabelDelete))

	style := st.Card
	if c.Selected {
		style = st.CardActive
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(b.String())
}
