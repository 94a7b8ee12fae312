package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/form"
)

// Static texts of the screen.
const (
	TextLoading    = "Cargando contactos..."
	TextEmpty      = "No se encontraron contactos que coincidan con la búsqueda."
	TextSortDesc   = "Ordenar Z-A"
	TextSortAsc    = "Ordenar A-Z"
	TextTabCreate  = "Crear contacto"
	TextTabList    = "Contactos"
	TextFooterLine = "Desarrollo Web – ReactJS | Proyecto Agenda ADSO"
)

// View renders the whole screen.
func (m *Model) View() string {
	st := m.ctrl.State()
	sections := []string{m.viewHeader(), m.viewTabs(st)}

	if st.Error != "" {
		sections = append(sections, m.styles.Banner.Render(st.Error))
	}
	if st.Loading {
		sections = append(sections, m.styles.Status.Render(TextLoading))
	}

	if st.View == agenda.ViewList {
		if st.Editing() {
			sections = append(sections, m.viewForm())
		}
		sections = append(sections, m.viewList(st))
	} else {
		sections = append(sections, m.viewForm())
	}

	sections = append(sections, m.viewFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Eyebrow.Render("Desarrollo Web ReactJS Ficha "+m.app.Ficha),
		m.styles.Title.Render(m.app.Titulo),
		m.styles.Subtitle.Render(m.app.Subtitulo),
	) + "\n"
}

func (m *Model) viewTabs(st agenda.State) string {
	create, list := m.styles.Tab, m.styles.Tab
	if st.View == agenda.ViewList {
		list = m.styles.ActiveTab
	} else {
		create = m.styles.ActiveTab
	}
	listLabel := fmt.Sprintf("%s (%d)", TextTabList, len(m.ctrl.Contacts()))
	return create.Render(TextTabCreate) + " " + list.Render(listLabel) + "\n"
}

func (m *Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Section.Render(m.form.Title()))
	b.WriteString("\n")
	for i, f := range formFields {
		b.WriteString(m.styles.Label.Render(f.label))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.form.Error(f.name); msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	button := m.styles.Button
	if m.form.Submitting() {
		button = m.styles.ButtonBusy
	}
	b.WriteString(button.Render(m.form.ButtonLabel()))
	if m.form.Editing() {
		b.WriteString("  ")
		b.WriteString(m.styles.Link.Render("[esc] " + form.ButtonCancel))
	}
	b.WriteString("\n")
	if m.focus == focusForm {
		b.WriteString(m.help.View(formHelp(m.keys)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewList(st agenda.State) string {
	var b strings.Builder
	sortLabel := TextSortDesc
	if !st.Ascending {
		sortLabel = TextSortAsc
	}
	b.WriteString(m.search.View())
	b.WriteString("  ")
	b.WriteString(m.styles.Link.Render("[s] " + sortLabel))
	b.WriteString("\n\n")

	visible := m.ctrl.Visible()
	if len(visible) == 0 && !st.Loading {
		b.WriteString(m.styles.Muted.Render(TextEmpty))
		b.WriteString("\n")
	}
	width := 0
	if m.width > 0 {
		width = min(m.width, 72)
	}
	for i, c := range visible {
		selected := m.focus == focusList && i == m.cursor
		b.WriteString(m.card(c, selected).Render(m.styles, width))
		b.WriteString("\n")
	}
	if m.focus != focusForm {
		b.WriteString(m.help.View(listHelp(m.keys)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(TextFooterLine + "\nInstructor: " + m.app.Instructor)
}
