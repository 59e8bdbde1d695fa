package repository

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y el vínculo manager-vendedor (DIP).
type UserRepository interface {
	// FindByEmail normaliza el email a minúsculas; domain.ErrNotFound si no hay fila.
	FindByEmail(ctx context.Context, emailAddress string) (*entity.User, error)
	FindByID(ctx context.Context, id int) (*entity.User, error)
	// Register fuerza MustUpdatePassword=true y devuelve el id generado.
	Register(ctx context.Context, user *entity.User) (int, error)
	ListManagers(ctx context.Context) ([]entity.User, error)
	ListSalespeopleOf(ctx context.Context, managerID int) ([]entity.User, error)
	// MarkPasswordResetRequired domain.ErrOperationFailed si no se afecta exactamente una fila.
	MarkPasswordResetRequired(ctx context.Context, userID int) error
	// ResetPassword NO normaliza el email; devuelve false si no se actualizó exactamente una fila.
	ResetPassword(ctx context.Context, emailAddress, salt, hash string) (bool, error)
	// LinkManagerToSalesperson domain.ErrLinkFailed si no se inserta exactamente una fila.
	LinkManagerToSalesperson(ctx context.Context, managerID, salespersonID int) error
	IsLinked(ctx context.Context, salespersonID, managerID int) (bool, error)
}
