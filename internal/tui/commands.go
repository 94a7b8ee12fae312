package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/contacts"
)

// Result messages. Each carries the ticket issued by the matching Begin call
// so Update can hand the outcome back to the controller.
type (
	loadedMsg struct {
		ticket agenda.Ticket
		items  []contacts.Contact
		err    error
	}
	createdMsg struct {
		ticket  agenda.Ticket
		contact contacts.Contact
		err     error
	}
	updatedMsg struct {
		ticket  agenda.Ticket
		contact contacts.Contact
		err     error
	}
	deletedMsg struct {
		ticket agenda.Ticket
		err    error
	}
)

// The commands below run off the event loop. They only touch the store and
// never read or write model state.

func loadCmd(ctx context.Context, store agenda.Store, t agenda.Ticket) tea.Cmd {
	return func() tea.Msg {
		items, err := store.List(ctx)
		return loadedMsg{ticket: t, items: items, err: err}
	}
}

func createCmd(ctx context.Context, store agenda.Store, t agenda.Ticket, draft contacts.Draft) tea.Cmd {
	return func() tea.Msg {
		created, err := store.Create(ctx, draft)
		return createdMsg{ticket: t, contact: created, err: err}
	}
}

func updateCmd(ctx context.Context, store agenda.Store, t agenda.Ticket, draft contacts.Draft) tea.Cmd {
	return func() tea.Msg {
		updated, err := store.Update(ctx, t.ID, draft)
		return updatedMsg{ticket: t, contact: updated, err: err}
	}
}

func deleteCmd(ctx context.Context, store agenda.Store, t agenda.Ticket) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{ticket: t, err: store.Delete(ctx, t.ID)}
	}
}
