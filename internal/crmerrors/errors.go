package crmerrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indica que el registro buscado no existe en el almacén.
var ErrNotFound = errors.New("registro no encontrado")

// ValidationError indica una entrada incompleta o que viola una
// restricción de unicidad. El llamador puede corregir y reintentar.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidation construye un ValidationError con formato printf.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError indica un cambio de estado de lead no permitido
// por el grafo de transiciones.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s → %s", e.From, e.To)
}

// PersistenceError envuelve un fallo del almacén indicando qué escritura
// falló. Se propaga al llamador sin reintentos.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error de persistencia en %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
