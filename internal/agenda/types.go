// Package agenda owns the contact collection and every state transition of the
// agenda: load, create, update, delete, edit mode, search, sort and view.
package agenda

import (
	"context"

	"github.com/adso-sena/agenda/internal/contacts"
)

// Store is the persistence boundary used by the controller.
type Store interface {
	List(ctx context.Context) ([]contacts.Contact, error)
	Create(ctx context.Context, draft contacts.Draft) (contacts.Contact, error)
	Update(ctx context.Context, id string, draft contacts.Draft) (contacts.Contact, error)
	Delete(ctx context.Context, id string) error
}

// View selects which screen is shown.
type View string

const (
	ViewCreate View = "create"
	ViewList   View = "list"
)

// State is a snapshot of the controller's flags. The flags are independent of
// each other: a load can be in flight while an error is shown and a contact is
// being edited.
type State struct {
	Loading    bool
	Error      string
	EditTarget *contacts.Contact
	Search     string
	Ascending  bool
	View       View
}

// Editing reports whether a contact is selected for editing.
func (s State) Editing() bool {
	return s.EditTarget != nil
}

// Ticket identifies an I/O transition between its begin and apply halves.
// EditGen records which edit selection was active when the request was issued.
type Ticket struct {
	Kind    Kind
	ID      string
	EditGen uint64
}
