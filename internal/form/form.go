// Package form implements the contact form: the draft being typed, its inline
// validation errors and the submit flow in create and edit mode.
package form

import (
	"context"
	"errors"

	"github.com/adso-sena/agenda/internal/contacts"
)

// Labels shown by views depending on the form mode.
const (
	TitleCreate  = "Nuevo contacto"
	TitleEdit    = "Editar contacto"
	ButtonCreate = "Agregar contacto"
	ButtonEdit   = "Guardar cambios"
	ButtonBusy   = "Guardando..."
	ButtonCancel = "Cancelar edición"
)

var (
	// ErrInvalid is returned by Submit when validation fails; no request is made.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrBusy is returned while a previous submit is still in flight.
	ErrBusy = errors.New("form is already submitting")
)

// Callbacks are the collaborators invoked on submit and cancel.
type Callbacks struct {
	OnCreate func(ctx context.Context, draft contacts.Draft) error
	OnUpdate func(ctx context.Context, id string, draft contacts.Draft) error
	OnCancel func()
}

// Form holds the draft, the field errors and the submitting flag.
type Form struct {
	cb         Callbacks
	draft      contacts.Draft
	errors     contacts.FieldErrors
	submitting bool
	target     *contacts.Contact
	gen        uint64
	submitGen  uint64
}

// New creates an empty form in create mode.
func New(cb Callbacks) *Form {
	return &Form{
		cb:     cb,
		errors: contacts.NewFieldErrors(),
	}
}

// Draft returns the current draft.
func (f *Form) Draft() contacts.Draft { return f.draft }

// Errors returns a copy of the field errors.
func (f *Form) Errors() contacts.FieldErrors {
	out := make(contacts.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Error returns the error message for one field.
func (f *Form) Error(field string) string { return f.errors[field] }

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// Editing reports whether the form edits an existing contact.
func (f *Form) Editing() bool { return f.target != nil }

// Target returns the id of the contact being edited, or "".
func (f *Form) Target() string {
	if f.target == nil {
		return ""
	}
	return f.target.ID
}

// Title returns the heading for the current mode.
func (f *Form) Title() string {
	if f.Editing() {
		return TitleEdit
	}
	return TitleCreate
}

// ButtonLabel returns the submit button text for the current mode.
func (f *Form) ButtonLabel() string {
	switch {
	case f.submitting:
		return ButtonBusy
	case f.Editing():
		return ButtonEdit
	default:
		return ButtonCreate
	}
}

// Set updates one draft field by name.
func (f *Form) Set(field, value string) bool {
	return f.draft.Set(field, value)
}

// SetTarget mirrors the edit target into the draft. A nil target returns the
// form to create mode with an empty draft. Errors are cleared either way.
func (f *Form) SetTarget(target *contacts.Contact) {
	if target == nil {
		f.target = nil
		f.draft.Reset()
	} else {
		copied := *target
		f.target = &copied
		f.draft = copied.Draft()
	}
	f.errors = contacts.NewFieldErrors()
	f.gen++
}

// Reset empties the draft and clears errors without changing the mode.
func (f *Form) Reset() {
	f.draft.Reset()
	f.errors = contacts.NewFieldErrors()
}

// Cancel leaves edit mode and notifies the OnCancel callback.
func (f *Form) Cancel() {
	f.SetTarget(nil)
	if f.cb.OnCancel != nil {
		f.cb.OnCancel()
	}
}

// Begin validates the draft and, when valid, marks the form as submitting.
// It returns the draft to send and the id of the edit target ("" in create mode).
func (f *Form) Begin() (contacts.Draft, string, error) {
	if f.submitting {
		return contacts.Draft{}, "", ErrBusy
	}
	f.errors = contacts.Validate(f.draft)
	if !f.errors.OK() {
		return contacts.Draft{}, "", ErrInvalid
	}
	f.submitting = true
	f.submitGen = f.gen
	return f.draft, f.Target(), nil
}

// Complete ends a submit started with Begin. On success the draft is reset and
// edit mode is left through OnCancel; on failure the draft is kept. If the
// target changed while the request was in flight the form is left alone.
// OnCancel may find the owner already out of edit mode and must tolerate that.
func (f *Form) Complete(err error) {
	f.submitting = false
	if err != nil || f.gen != f.submitGen {
		return
	}
	editing := f.Editing()
	f.Reset()
	if editing {
		f.Cancel()
	}
}

// Submit validates the draft and calls OnCreate or OnUpdate. The submitting
// flag is always cleared before returning.
func (f *Form) Submit(ctx context.Context) (err error) {
	draft, id, err := f.Begin()
	if err != nil {
		return err
	}
	defer func() { f.Complete(err) }()

	if id != "" {
		if f.cb.OnUpdate == nil {
			return errors.New("form: OnUpdate not configured")
		}
		return f.cb.OnUpdate(ctx, id, draft)
	}
	if f.cb.OnCreate == nil {
		return errors.New("form: OnCreate not configured")
	}
	return f.cb.OnCreate(ctx, draft)
}
