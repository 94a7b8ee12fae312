package contacts

import "strings"

// Validation messages shown inline next to each required field.
const (
	MsgNombreRequired   = "El nombre es obligatorio."
	MsgTelefonoRequired = "El teléfono es obligatorio."
	MsgCorreoRequired   = "El correo es obligatorio."
	MsgCorreoInvalid    = "El correo debe contener @."
)

// FieldErrors maps a required field to its error message. An empty message
// means the field is valid.
type FieldErrors map[string]string

// NewFieldErrors returns a mapping with every required field present and empty.
func NewFieldErrors() FieldErrors {
	return FieldErrors{
		FieldNombre:   "",
		FieldTelefono: "",
		FieldCorreo:   "",
	}
}

// OK reports whether no field carries an error.
func (e FieldErrors) OK() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Validate checks the required fields of d. etiqueta and empresa are free text.
func Validate(d Draft) FieldErrors {
	errs := NewFieldErrors()
	if strings.TrimSpace(d.Nombre) == "" {
		errs[FieldNombre] = MsgNombreRequired
	}
	if strings.TrimSpace(d.Telefono) == "" {
		errs[FieldTelefono] = MsgTelefonoRequired
	}
	switch {
	case strings.TrimSpace(d.Correo) == "":
		errs[FieldCorreo] = MsgCorreoRequired
	case !strings.Contains(d.Correo, "@"):
		errs[FieldCorreo] = MsgCorreoInvalid
	}
	return errs
}
