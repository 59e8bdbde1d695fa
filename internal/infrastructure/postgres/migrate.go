package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"

	"github.com/jhoicas/door-to-door/pkg/config"
	"github.com/jhoicas/door-to-door/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const schemaVersionTable = "schema_version"

// Migrate aplica las migraciones embebidas hasta la última versión.
// Usa una conexión dedicada, no el pool.
func Migrate(ctx context.Context, cfg config.DBConfig, log *logger.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("conectar para migrar: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, schemaVersionTable)
	if err != nil {
		return fmt.Errorf("construir migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("subárbol de migraciones: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("cargar migraciones: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("versión actual del esquema: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrar: %w", err)
	}

	to := int32(len(m.Migrations))
	if from == to {
		log.Info().Int32("version", to).Msg("esquema al día")
	} else {
		log.Info().Int32("from", from).Int32("to", to).Msg("esquema migrado")
	}
	return nil
}
