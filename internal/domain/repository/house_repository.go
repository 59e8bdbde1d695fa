package repository

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// HouseRepository define el puerto de persistencia para House.
type HouseRepository interface {
	ListForManager(ctx context.Context, managerID int) ([]entity.House, error)
	// Create comprueba que el vendedor asignado pertenece al manager antes de escribir;
	// si no, domain.ErrUnauthorizedAssignment y ninguna escritura.
	Create(ctx context.Context, house *entity.House) (int, error)
}
