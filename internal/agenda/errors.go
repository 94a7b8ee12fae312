package agenda

import (
	"errors"
	"fmt"
)

// Kind classifies a failed controller transition.
type Kind string

const (
	LoadError   Kind = "load"
	CreateError Kind = "create"
	UpdateError Kind = "update"
	DeleteError Kind = "delete"
)

// User-facing messages, one per failure kind. Technical details are only logged.
const (
	MsgLoadFailed   = "No se pudieron cargar los contactos. Verifica que el servidor esté encendido e intenta de nuevo."
	MsgCreateFailed = "No se pudo guardar el contacto. Verifica tu conexión o el estado del servidor e intenta nuevamente."
	MsgUpdateFailed = "No se pudo actualizar el contacto. Verifica tu conexión o el servidor e intenta nuevamente."
	MsgDeleteFailed = "No se pudo eliminar el contacto. Vuelve a intentarlo o verifica el servidor."
)

// ErrNoEditTarget is returned by update transitions when no contact is being edited.
var ErrNoEditTarget = errors.New("no contact selected for editing")

// Failure wraps a persistence error with the transition that produced it.
type Failure struct {
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s contact: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Message returns the static message shown to the user for this failure.
func (f *Failure) Message() string {
	return MessageFor(f.Kind)
}

// MessageFor maps a failure kind to its user-facing message.
func MessageFor(kind Kind) string {
	switch kind {
	case LoadError:
		return MsgLoadFailed
	case CreateError:
		return MsgCreateFailed
	case UpdateError:
		return MsgUpdateFailed
	case DeleteError:
		return MsgDeleteFailed
	default:
		return ""
	}
}
