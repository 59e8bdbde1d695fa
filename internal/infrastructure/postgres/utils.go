package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/door-to-door/internal/domain"
)

// SQLSTATE relevantes (clase 23: integrity constraint violation).
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

// storageError envuelve un fallo del driver en domain.StorageError, clasificado por SQLSTATE.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	se := &domain.StorageError{Op: op, Code: domain.StorageOther, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.SQLState = pgErr.Code
		se.Constraint = pgErr.ConstraintName
		se.Code = mapSQLState(pgErr.Code)
	}
	return se
}

func mapSQLState(code string) domain.StorageCode {
	switch code {
	case sqlStateUniqueViolation:
		return domain.StorageUniqueViolation
	case sqlStateForeignKeyViolation:
		return domain.StorageForeignKeyViolation
	case sqlStateNotNullViolation:
		return domain.StorageNotNullViolation
	case sqlStateCheckViolation:
		return domain.StorageCheckViolation
	default:
		return domain.StorageOther
	}
}
