package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDraftNotFound      = errors.New("borrador de guía no encontrado o expirado")
	ErrSearchDisabled     = errors.New("el motivo de traslado no permite buscar documentos de referencia")
	ErrBackendRejected    = errors.New("el servidor rechazó la operación")
	ErrBackendUnavailable = errors.New("no se pudo conectar con el servidor")
)

// FieldError describe un campo inválido con su mensaje para el usuario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones de un borrador antes del envío.
// Envuelve ErrInvalidInput para que errors.Is funcione en los handlers.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add registra una violación.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors indica si hay al menos una violación.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// BackendError error reportado por el backend ERP.
// Si Rejected es true el backend respondió isSuccess:false y Message se muestra tal cual;
// en otro caso es un fallo de transporte y se envuelve ErrBackendUnavailable.
type BackendError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Rejected   bool
	Cause      error
}

func (e *BackendError) Error() string {
	if e.Rejected {
		return fmt.Sprintf("%s [%s]: %s", ErrBackendRejected.Error(), e.Endpoint, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s [%s]: %v", ErrBackendUnavailable.Error(), e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("%s [%s]: HTTP %d %s", ErrBackendUnavailable.Error(), e.Endpoint, e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	if e.Rejected {
		return ErrBackendRejected
	}
	return ErrBackendUnavailable
}
