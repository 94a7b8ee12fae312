package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/contacts"
	"github.com/adso-sena/agenda/internal/form"
	"github.com/adso-sena/agenda/internal/logger"
)

type memStore struct {
	items   []contacts.Contact
	next    int
	calls   int
	failAll error
}

func (s *memStore) List(context.Context) ([]contacts.Contact, error) {
	s.calls++
	if s.failAll != nil {
		return nil, s.failAll
	}
	return append([]contacts.Contact(nil), s.items...), nil
}

func (s *memStore) Create(_ context.Context, d contacts.Draft) (contacts.Contact, error) {
	s.calls++
	if s.failAll != nil {
		return contacts.Contact{}, s.failAll
	}
	s.next++
	c := d.WithID(fmt.Sprintf("c%d", s.next))
	s.items = append(s.items, c)
	return c, nil
}

func (s *memStore) Update(_ context.Context, id string, d contacts.Draft) (contacts.Contact, error) {
	s.calls++
	if s.failAll != nil {
		return contacts.Contact{}, s.failAll
	}
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return contacts.Contact{}, errors.New("not found")
	}
	s.items[idx] = d.WithID(id)
	return s.items[idx], nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.calls++
	if s.failAll != nil {
		return s.failAll
	}
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return errors.New("not found")
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

func newTestModel(t *testing.T, store *memStore) *Model {
	t.Helper()
	m := New(context.Background(), logger.Discard(), store, config.Default().App)
	// Run the initial load synchronously.
	cmd := m.startLoad()
	require.NotNil(t, cmd)
	m.Update(cmd())
	return m
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// run executes a request command and feeds its result back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func fillForm(m *Model, nombre, telefono, correo string) {
	typeText(m, nombre)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, telefono)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, correo)
}

func seeded() *memStore {
	return &memStore{
		next: 2,
		items: []contacts.Contact{
			{ID: "c1", Nombre: "Beto", Telefono: "2", Correo: "b@x", Etiqueta: "Familia"},
			{ID: "c2", Nombre: "ana", Telefono: "1", Correo: "a@x", Etiqueta: "Trabajo"},
		},
	}
}

func TestModel_InitialLoad(t *testing.T) {
	m := newTestModel(t, seeded())

	st := m.Controller().State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Len(t, m.Controller().Contacts(), 2)
	assert.Equal(t, agenda.ViewCreate, st.View)
	assert.Nil(t, m.startLoad(), "the collection is loaded once")
}

func TestModel_LoadFailureShowsBanner(t *testing.T) {
	m := newTestModel(t, &memStore{failAll: errors.New("connection refused")})

	view := m.View()
	assert.Contains(t, view, agenda.MsgLoadFailed)
	assert.NotContains(t, view, TextLoading)
	assert.NotContains(t, view, "connection refused")
}

func TestModel_InvalidSubmitMakesNoRequest(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)
	calls := store.calls

	typeText(m, "Ana")
	assert.Nil(t, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, calls, store.calls)
	assert.False(t, m.Form().Submitting())
	view := m.View()
	assert.Contains(t, view, contacts.MsgTelefonoRequired)
	assert.Contains(t, view, contacts.MsgCorreoRequired)
	assert.Equal(t, "Ana", m.Form().Draft().Nombre)
}

func TestModel_CreateContact(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)

	fillForm(m, "Carla", "3", "carla@x")
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Form().Submitting())
	assert.Contains(t, m.View(), form.ButtonBusy)

	run(t, m, cmd)

	assert.False(t, m.Form().Submitting())
	assert.True(t, m.Form().Draft().IsZero())
	assert.Len(t, m.Controller().Contacts(), 3)
	for i := range m.inputs {
		assert.Empty(t, m.inputs[i].Value())
	}
}

func TestModel_CreateFailureKeepsDraft(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)
	store.failAll = errors.New("boom")

	fillForm(m, "Carla", "3", "carla@x")
	run(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, agenda.MsgCreateFailed, m.Controller().State().Error)
	assert.Equal(t, "Carla", m.Form().Draft().Nombre)
	assert.False(t, m.Form().Submitting())
	assert.Len(t, m.Controller().Contacts(), 2)
}

func TestModel_ListViewSearchAndSort(t *testing.T) {
	m := newTestModel(t, seeded())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, agenda.ViewList, m.Controller().State().View)
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), TextSortDesc)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.False(t, m.Controller().State().Ascending)
	assert.Equal(t, "Beto", m.Controller().Visible()[0].Nombre)
	assert.Contains(t, m.View(), TextSortAsc)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.Equal(t, focusSearch, m.focus)
	typeText(m, "TRAB")
	assert.Equal(t, "TRAB", m.Controller().State().Search)
	visible := m.Controller().Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "ana", visible[0].Nombre)

	typeText(m, "zzz")
	assert.Contains(t, m.View(), TextEmpty)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusList, m.focus)
}

func TestModel_EditFromList(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	// A-Z order puts "ana" first.
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.True(t, m.Form().Editing())
	assert.Equal(t, "c2", m.Form().Target())
	assert.Equal(t, "ana", m.inputs[0].Value())
	assert.Equal(t, focusForm, m.focus)
	assert.Contains(t, m.View(), form.TitleEdit)
	assert.Contains(t, m.View(), form.ButtonCancel)

	typeText(m, " María")
	run(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.False(t, m.Form().Editing())
	assert.Nil(t, m.Controller().State().EditTarget)
	got, ok := m.Controller().Find("c2")
	require.True(t, ok)
	assert.Equal(t, "ana María", got.Nombre)
	assert.Equal(t, focusList, m.focus)
	assert.True(t, m.Form().Draft().IsZero())
}

func TestModel_CancelEdit(t *testing.T) {
	m := newTestModel(t, seeded())
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.True(t, m.Form().Editing())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Form().Editing())
	assert.Nil(t, m.Controller().State().EditTarget)
	assert.True(t, m.Form().Draft().IsZero())
	assert.Equal(t, focusList, m.focus)
}

func TestModel_StaleUpdateKeepsNewSelection(t *testing.T) {
	m := newTestModel(t, seeded())
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	pending := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, pending)

	// Select another contact before the update answers.
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Equal(t, "c1", m.Form().Target())

	run(t, m, pending)

	require.NotNil(t, m.Controller().State().EditTarget)
	assert.Equal(t, "c1", m.Controller().State().EditTarget.ID)
	assert.Equal(t, "c1", m.Form().Target())
	assert.Equal(t, "Beto", m.Form().Draft().Nombre)
	assert.False(t, m.Form().Submitting())
}

func TestModel_DeleteFromList(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	run(t, m, press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}))

	_, ok := m.Controller().Find("c2")
	assert.False(t, ok)
	assert.Len(t, m.Controller().Contacts(), 1)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_DeleteEditedContactLeavesEditMode(t *testing.T) {
	m := newTestModel(t, seeded())
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.True(t, m.Form().Editing())

	cmd := m.card(m.Controller().Visible()[0], true).Delete()
	run(t, m, cmd)

	assert.False(t, m.Form().Editing())
	assert.Nil(t, m.Controller().State().EditTarget)
}

func TestModel_DeleteFailureKeepsCollection(t *testing.T) {
	store := seeded()
	m := newTestModel(t, store)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	store.failAll = errors.New("down")

	run(t, m, press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}))

	assert.Len(t, m.Controller().Contacts(), 2)
	assert.Contains(t, m.View(), agenda.MsgDeleteFailed)
}

func TestModel_HeaderAndFooter(t *testing.T) {
	m := newTestModel(t, seeded())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	app := config.Default().App
	assert.Contains(t, view, "Ficha "+app.Ficha)
	assert.Contains(t, view, app.Titulo)
	assert.Contains(t, view, TextFooterLine)
	assert.Contains(t, view, "Instructor: "+app.Instructor)
	assert.Contains(t, view, form.TitleCreate)
	assert.Contains(t, view, form.ButtonCreate)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, seeded())
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_EditKeepsLongFieldValues(t *testing.T) {
	store := seeded()
	longEmail := strings.Repeat("a", 140) + "@x"
	store.items = append(store.items, contacts.Contact{ID: "c3", Nombre: "Zoe", Telefono: "3", Correo: longEmail})
	m := newTestModel(t, store)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	// A-Z order: ana, Beto, Zoe.
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Equal(t, "c3", m.Form().Target())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, longEmail, m.inputs[2].Value())
	assert.Equal(t, longEmail, m.Form().Draft().Correo)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Form().Error(contacts.FieldCorreo))
	run(t, m, cmd)

	got, ok := m.Controller().Find("c3")
	require.True(t, ok)
	assert.Equal(t, longEmail, got.Correo)
	assert.Equal(t, longEmail, store.items[contacts.IndexByID(store.items, "c3")].Correo)
}

func TestModel_UpdateLeavesEditModeOnce(t *testing.T) {
	m := newTestModel(t, seeded())
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	gen := m.Controller().EditGeneration()
	run(t, m, cmd)

	assert.Nil(t, m.Controller().State().EditTarget)
	assert.Equal(t, gen+1, m.Controller().EditGeneration())
	assert.False(t, m.Form().Editing())
}
