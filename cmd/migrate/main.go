// Comando migrate: aplica el esquema y, si SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD
// están definidos, crea el administrador inicial (idempotente por email).
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/infrastructure/postgres"
	"github.com/jhoicas/door-to-door/pkg/config"
	"github.com/jhoicas/door-to-door/pkg/logger"
	"github.com/jhoicas/door-to-door/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.DB, log); err != nil {
		log.Error().Err(err).Msg("migración")
		os.Exit(1)
	}

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Info().Msg("sin administrador inicial que sembrar")
		return
	}
	if err := seedAdmin(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("sembrar administrador")
		os.Exit(1)
	}
}

func seedAdmin(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail(ctx, cfg.Seed.AdminEmail)
	if err == nil {
		log.Info().Int("id", existing.ID).Str("email", existing.EmailAddress).Msg("administrador ya existe")
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	salt, hash, err := password.NewHasher(0).Hash(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	admin := &entity.User{
		ID:           entity.InvalidID,
		FirstName:    cfg.Seed.AdminFirstName,
		LastName:     cfg.Seed.AdminLastName,
		EmailAddress: cfg.Seed.AdminEmail,
		PasswordHash: hash,
		PasswordSalt: salt,
		RoleID:       entity.RoleAdministrator,
	}
	id, err := users.Register(ctx, admin)
	if err != nil {
		return err
	}
	log.Info().Int("id", id).Str("email", admin.EmailAddress).Msg("administrador creado; debe cambiar la contraseña al entrar")
	return nil
}
