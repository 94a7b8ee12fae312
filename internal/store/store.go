// Package store persists contacts for the mock backend. Records are kept in
// insertion order and ids are assigned on create.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/adso-sena/agenda/internal/contacts"
)

var (
	// ErrNotFound is returned when no contact has the requested id.
	ErrNotFound = errors.New("contact not found")
	// ErrDuplicateID is returned when a created contact reuses a stored id.
	ErrDuplicateID = errors.New("duplicate contact id")
)

// Store is the contact repository behind the /contactos handlers.
type Store interface {
	List(ctx context.Context) ([]contacts.Contact, error)
	Get(ctx context.Context, id string) (contacts.Contact, error)
	Create(ctx context.Context, c contacts.Contact) (contacts.Contact, error)
	Update(ctx context.Context, id string, d contacts.Draft) (contacts.Contact, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Patch is a partial update; nil fields keep their stored value.
type Patch struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Correo   *string `json:"correo"`
	Etiqueta *string `json:"etiqueta"`
	Empresa  *string `json:"empresa"`
}

// Apply overlays the patch on the draft d.
func (p Patch) Apply(d contacts.Draft) contacts.Draft {
	if p.Nombre != nil {
		d.Nombre = *p.Nombre
	}
	if p.Telefono != nil {
		d.Telefono = *p.Telefono
	}
	if p.Correo != nil {
		d.Correo = *p.Correo
	}
	if p.Etiqueta != nil {
		d.Etiqueta = *p.Etiqueta
	}
	if p.Empresa != nil {
		d.Empresa = *p.Empresa
	}
	return d
}

// NewID returns a fresh contact id.
func NewID() string {
	return uuid.NewString()
}

// assignID keeps a caller-supplied id (seed data) or generates a new one.
func assignID(c contacts.Contact) contacts.Contact {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = NewID()
	}
	return c
}
