package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/door-to-door/internal/domain"
)

// DBTX subconjunto de *pgxpool.Pool (y pgx.Tx) que usa el gateway.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway ejecuta sentencias parametrizadas y traduce filas a registros.
// No contiene reglas de negocio ni registra logs.
type Gateway struct {
	db DBTX
}

// NewGateway construye el gateway sobre el pool.
func NewGateway(db DBTX) *Gateway {
	return &Gateway{db: db}
}

// Exec ejecuta una sentencia y devuelve las filas afectadas.
func (g *Gateway) Exec(ctx context.Context, op, sql string, args ...any) (int64, error) {
	tag, err := g.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, storageError(op, err)
	}
	return tag.RowsAffected(), nil
}

// InsertReturningID ejecuta un INSERT ... RETURNING id; el id sale de la misma sentencia.
func (g *Gateway) InsertReturningID(ctx context.Context, op, sql string, args ...any) (int, error) {
	var id int
	if err := g.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, storageError(op, err)
	}
	return id, nil
}

// record describe las columnas que un tipo de fila necesita del resultado.
type record struct {
	name    string
	columns []string
}

var errMissingColumn = errors.New("column missing from result")

// queryAll ejecuta la consulta y decodifica todas las filas en T.
// Las filas se cierran en todos los caminos.
func queryAll[T any](ctx context.Context, g *Gateway, op string, rec record, sql string, args ...any) ([]T, error) {
	rows, err := g.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	// Un fallo en Bind deja el resultado sin columnas; el error real aparece al cerrar.
	fields := rows.FieldDescriptions()
	if len(fields) == 0 {
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, storageError(op, err)
		}
	}
	if err := requireColumns(rec, fields); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for rows.Next() {
		v, err := pgx.RowToStructByName[T](rows)
		if err != nil {
			return nil, &domain.DecodeError{Record: rec.name, Err: err}
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}
	return out, nil
}

// queryFirst como queryAll pero solo considera la primera fila; ok=false si no hay filas.
func queryFirst[T any](ctx context.Context, g *Gateway, op string, rec record, sql string, args ...any) (T, bool, error) {
	var zero T
	list, err := queryAll[T](ctx, g, op, rec, sql, args...)
	if err != nil {
		return zero, false, err
	}
	if len(list) == 0 {
		return zero, false, nil
	}
	return list[0], true, nil
}

func requireColumns(rec record, fields []pgconn.FieldDescription) error {
	have := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		have[strings.ToLower(f.Name)] = struct{}{}
	}
	for _, c := range rec.columns {
		if _, ok := have[c]; !ok {
			return &domain.DecodeError{Record: rec.name, Column: c, Err: errMissingColumn}
		}
	}
	return nil
}
