// Package tui is the interactive terminal front end of the agenda. It renders
// the controller state with bubbletea and routes every network call through
// tea.Cmd functions whose results are applied inside Update.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/contacts"
	"github.com/adso-sena/agenda/internal/form"
)

type focus int

const (
	focusForm focus = iota
	focusSearch
	focusList
)

type formField struct {
	name        string
	label       string
	placeholder string
}

var formFields = []formField{
	{contacts.FieldNombre, "Nombre *", "Ej: Camila Pérez"},
	{contacts.FieldTelefono, "Teléfono *", "Ej: 300 123 4567"},
	{contacts.FieldCorreo, "Correo *", "Ej: camila@sena.edu.co"},
	{contacts.FieldEtiqueta, "Etiqueta", "Ej: Trabajo"},
	{contacts.FieldEmpresa, "Empresa", "Ej: SENA"},
}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	store  agenda.Store
	ctrl   *agenda.Controller
	form   *form.Form
	app    config.AppConfig
	logger *slog.Logger

	styles Styles
	keys   keyMap
	help   help.Model

	inputs []textinput.Model
	search textinput.Model

	focus     focus
	field     int
	cursor    int
	syncedGen uint64
	width     int
}

// New builds the model. Requests made by the UI use ctx and the store.
func New(ctx context.Context, log *slog.Logger, store agenda.Store, app config.AppConfig) *Model {
	if log == nil {
		log = slog.Default()
	}
	m := &Model{
		ctx:    ctx,
		store:  store,
		ctrl:   agenda.NewController(log, store),
		app:    app,
		logger: log.With(slog.String("component", "tui")),
		styles: DefaultStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		focus:  focusForm,
	}
	m.form = form.New(form.Callbacks{OnCancel: m.ctrl.CancelEdit})
	m.syncedGen = m.ctrl.EditGeneration()

	m.inputs = make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 0
		in.Width = 40
		m.inputs[i] = in
	}
	m.search = textinput.New()
	m.search.Placeholder = "Buscar por nombre, correo o etiqueta..."
	m.search.Width = 40
	m.applyFocus()
	return m
}

// Controller exposes the underlying controller.
func (m *Model) Controller() *agenda.Controller { return m.ctrl }

// Form exposes the contact form.
func (m *Model) Form() *form.Form { return m.form }

// Init starts the initial load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), textinput.Blink)
}

func (m *Model) startLoad() tea.Cmd {
	t, ok := m.ctrl.BeginLoad()
	if !ok {
		return nil
	}
	return loadCmd(m.ctx, m.store, t)
}

// Update applies one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		_ = m.ctrl.ApplyLoad(msg.ticket, msg.items, msg.err)
		m.afterTransition()
		return m, nil

	case createdMsg:
		err := m.ctrl.ApplyCreate(msg.ticket, msg.contact, msg.err)
		m.form.Complete(err)
		m.afterTransition()
		return m, nil

	case updatedMsg:
		err := m.ctrl.ApplyUpdate(msg.ticket, msg.contact, msg.err)
		m.form.Complete(err)
		m.afterTransition()
		return m, nil

	case deletedMsg:
		_ = m.ctrl.ApplyDelete(msg.ticket, msg.err)
		m.afterTransition()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.SwitchView):
		m.ctrl.ToggleView()
		m.resetFocus()
		return nil
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusList:
		return m.handleListKey(msg)
	default:
		return m.handleFormKey(msg)
	}
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.field = (m.field + 1) % len(m.inputs)
		m.applyFocus()
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.field = (m.field - 1 + len(m.inputs)) % len(m.inputs)
		m.applyFocus()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Cancel):
		if m.form.Editing() {
			m.form.Cancel()
			m.afterTransition()
		}
		return nil
	}
	return m.updateFocused(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel, m.keys.Submit) {
		m.focus = focusList
		m.applyFocus()
		return nil
	}
	return m.updateFocused(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	visible := m.ctrl.Visible()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(visible) {
			return m.card(visible[m.cursor], true).Edit()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(visible) {
			return m.card(visible[m.cursor], true).Delete()
		}
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.applyFocus()
	case key.Matches(msg, m.keys.Sort):
		m.ctrl.ToggleSort()
	case key.Matches(msg, m.keys.Cancel):
		if m.form.Editing() {
			m.form.Cancel()
			m.afterTransition()
		}
	}
	return nil
}

// updateFocused forwards msg to the focused text input and mirrors its value
// into the form draft or the search term.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusForm:
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
		m.form.Set(formFields[m.field].name, m.inputs[m.field].Value())
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.ctrl.State().Search {
			m.ctrl.SetSearch(m.search.Value())
			m.cursor = 0
		}
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	draft, id, err := m.form.Begin()
	if err != nil {
		m.logger.Debug("submit rejected", slog.Any("error", err))
		return nil
	}
	if id == "" {
		t := m.ctrl.BeginCreate()
		return createCmd(m.ctx, m.store, t, draft)
	}
	t, err := m.ctrl.BeginUpdate()
	if err != nil {
		m.form.Complete(err)
		return nil
	}
	return updateCmd(m.ctx, m.store, t, draft)
}

func (m *Model) card(c contacts.Contact, selected bool) Card {
	return Card{
		Contact:  c,
		Selected: selected,
		OnEdit:   m.editContact,
		OnDelete: m.deleteContact,
	}
}

func (m *Model) editContact(id string) tea.Cmd {
	if m.ctrl.EditByID(id) {
		m.afterTransition()
	}
	return nil
}

func (m *Model) deleteContact(id string) tea.Cmd {
	t := m.ctrl.BeginDelete(id)
	return deleteCmd(m.ctx, m.store, t)
}

// afterTransition re-syncs the form with the controller's edit target when it
// changed, then refreshes the inputs and the list cursor.
func (m *Model) afterTransition() {
	if gen := m.ctrl.EditGeneration(); gen != m.syncedGen {
		m.syncedGen = gen
		m.form.SetTarget(m.ctrl.State().EditTarget)
		m.resetFocus()
	}
	m.syncInputs()
	if n := len(m.ctrl.Visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) syncInputs() {
	draft := m.form.Draft()
	for i, f := range formFields {
		if v := draft.Get(f.name); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

// resetFocus picks the focused widget for the current view: the form on the
// create screen or while editing, the card list otherwise.
func (m *Model) resetFocus() {
	st := m.ctrl.State()
	switch {
	case st.View == agenda.ViewCreate:
		m.focus = focusForm
	case st.Editing():
		m.focus = focusForm
		m.field = 0
	default:
		m.focus = focusList
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for i := range m.inputs {
		if m.focus == focusForm && i == m.field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if m.focus == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}
