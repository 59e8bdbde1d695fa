package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/infrastructure/postgres"
)

// failedBindRows reproduce el resultado de pgx cuando el servidor rechaza la sentencia
// en Bind: Query no devuelve error, no hay columnas y el error aparece al cerrar.
type failedBindRows struct {
	err    error
	closed bool
}

func (r *failedBindRows) Err() error {
	if r.closed {
		return r.err
	}
	return nil
}

func (r *failedBindRows) Next() bool {
	r.closed = true
	return false
}

func (r *failedBindRows) Close() { r.closed = true }
func (r *failedBindRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *failedBindRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *failedBindRows) Scan(...any) error { return r.err }
func (r *failedBindRows) Values() ([]any, error) { return nil, r.err }
func (r *failedBindRows) RawValues() [][]byte { return nil }
func (r *failedBindRows) Conn() *pgx.Conn { return nil }

type failedBindDB struct{ err error }

func (db failedBindDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, db.err
}

func (db failedBindDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return &failedBindRows{err: db.err}, nil
}

func (db failedBindDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return &failedBindRows{err: db.err}
}

func TestGateway_FalloEnBind_StorageError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22021", Message: "invalid byte sequence for encoding \"UTF8\""}
	repo := postgres.NewUserRepository(failedBindDB{err: pgErr})

	_, err := repo.FindByEmail(context.Background(), "ann@co.com")
	se, ok := domain.IsStorageError(err)
	require.True(t, ok, "el error del servidor llega como StorageError, no como DecodeError")
	assert.Equal(t, "22021", se.SQLState)
	assert.Equal(t, domain.StorageOther, se.Code)
	assert.ErrorIs(t, err, pgErr)

	var decErr *domain.DecodeError
	assert.False(t, errors.As(err, &decErr))
}

func TestGateway_FalloEnBind_Listados(t *testing.T) {
	db := failedBindDB{err: &pgconn.PgError{Code: "08006"}}

	_, err := postgres.NewUserRepository(db).ListManagers(context.Background())
	_, ok := domain.IsStorageError(err)
	assert.True(t, ok)

	_, err = postgres.NewHouseRepository(db).ListForManager(context.Background(), 1)
	_, ok = domain.IsStorageError(err)
	assert.True(t, ok)

	_, err = postgres.NewSalesTransactionRepository(db).ReportForManager(context.Background(), 1)
	_, ok = domain.IsStorageError(err)
	assert.True(t, ok)
}
