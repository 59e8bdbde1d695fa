package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("user does not exist")
	ErrOperationFailed        = errors.New("operation did not affect exactly one row")
	ErrUnauthorizedAssignment = errors.New("not your salesperson")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
)

// ErrLinkFailed es un ErrOperationFailed específico del alta de un vínculo manager-vendedor.
// errors.Is(ErrLinkFailed, ErrOperationFailed) es verdadero.
var ErrLinkFailed = fmt.Errorf("manager-salesperson link failed: %w", ErrOperationFailed)

// StorageCode clasifica los fallos del almacén a partir del SQLSTATE.
type StorageCode string

const (
	StorageUniqueViolation     StorageCode = "UNIQUE_VIOLATION"
	StorageForeignKeyViolation StorageCode = "FOREIGN_KEY_VIOLATION"
	StorageNotNullViolation    StorageCode = "NOT_NULL_VIOLATION"
	StorageCheckViolation      StorageCode = "CHECK_VIOLATION"
	StorageOther               StorageCode = "OTHER"
)

// StorageError el almacén rechazó la operación (conectividad, constraint, timeout).
// No se interpreta ni se reintenta; solo se clasifica.
type StorageError struct {
	Op         string
	Code       StorageCode
	SQLState   string
	Constraint string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: storage error (%s, %s): %v", e.Op, e.Code, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%s: storage error (%s): %v", e.Op, e.Code, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsUniqueViolation indica si el fallo fue una clave única duplicada (ej. email ya registrado).
func (e *StorageError) IsUniqueViolation() bool { return e.Code == StorageUniqueViolation }

// DecodeError una fila no trae la columna esperada o trae un valor con forma incompatible.
type DecodeError struct {
	Record string
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("decode %s: column %q: %v", e.Record, e.Column, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsStorageError devuelve el StorageError de la cadena, si existe.
func IsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
