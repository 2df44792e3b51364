package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrRemote       = errors.New("la API remota rechazó la operación")
)

// RemoteError describe un fallo al hablar con la API: transporte (StatusCode 0, Cause),
// status HTTP no exitoso, cuerpo ilegible o success=false.
// errors.Is(err, ErrRemote) es verdadero para cualquier RemoteError.
type RemoteError struct {
	StatusCode int
	Path       string
	Message    string // mensaje del servidor, si lo hubo
	Cause      error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Cause != nil:
		return fmt.Sprintf("api %s: %v", e.Path, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("api %s: HTTP %d: %s", e.Path, e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("api %s: HTTP %d: %v", e.Path, e.StatusCode, e.Cause)
	default:
		return fmt.Sprintf("api %s: HTTP %d", e.Path, e.StatusCode)
	}
}

func (e *RemoteError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRemote}
	}
	return []error{ErrRemote, e.Cause}
}

// MessageOf devuelve el mensaje del servidor si err es un RemoteError con mensaje; si no, def.
func MessageOf(err error, def string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return def
}
