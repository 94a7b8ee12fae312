// Package contacts holds the contact record, the form draft, field validation
// and the search/sort rules used to build the displayed list.
package contacts

import "strings"

// Field names shared by the draft, validation errors and the REST payload.
const (
	FieldNombre   = "nombre"
	FieldTelefono = "telefono"
	FieldCorreo   = "correo"
	FieldEtiqueta = "etiqueta"
	FieldEmpresa  = "empresa"
)

// Contact is a persisted agenda entry. ID is assigned by the backend and is
// empty until the record has been created.
type Contact struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Nombre   string `json:"nombre" yaml:"nombre"`
	Telefono string `json:"telefono" yaml:"telefono"`
	Correo   string `json:"correo" yaml:"correo"`
	Etiqueta string `json:"etiqueta,omitempty" yaml:"etiqueta,omitempty"`
	Empresa  string `json:"empresa,omitempty" yaml:"empresa,omitempty"`
}

// Draft is the unsaved, form-local copy of a contact's fields.
type Draft struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
	Etiqueta string `json:"etiqueta"`
	Empresa  string `json:"empresa,omitempty"`
}

// Draft copies the editable fields of c.
func (c Contact) Draft() Draft {
	return Draft{
		Nombre:   c.Nombre,
		Telefono: c.Telefono,
		Correo:   c.Correo,
		Etiqueta: c.Etiqueta,
		Empresa:  c.Empresa,
	}
}

// WithID builds a contact from the draft fields and the given id.
func (d Draft) WithID(id string) Contact {
	return Contact{
		ID:       id,
		Nombre:   d.Nombre,
		Telefono: d.Telefono,
		Correo:   d.Correo,
		Etiqueta: d.Etiqueta,
		Empresa:  d.Empresa,
	}
}

// Set updates one field by name. It reports false for unknown names.
func (d *Draft) Set(field, value string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldNombre:
		d.Nombre = value
	case FieldTelefono:
		d.Telefono = value
	case FieldCorreo:
		d.Correo = value
	case FieldEtiqueta:
		d.Etiqueta = value
	case FieldEmpresa:
		d.Empresa = value
	default:
		return false
	}
	return true
}

// Get returns the value of a field by name.
func (d Draft) Get(field string) string {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldNombre:
		return d.Nombre
	case FieldTelefono:
		return d.Telefono
	case FieldCorreo:
		return d.Correo
	case FieldEtiqueta:
		return d.Etiqueta
	case FieldEmpresa:
		return d.Empresa
	default:
		return ""
	}
}

// Reset clears every field.
func (d *Draft) Reset() {
	*d = Draft{}
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}
