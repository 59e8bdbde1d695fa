package usecase

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/password"
)

// AdminUseCase operaciones del administrador sobre managers y contraseñas.
type AdminUseCase struct {
	users  repository.UserRepository
	hasher *password.Hasher
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(users repository.UserRepository, hasher *password.Hasher) *AdminUseCase {
	return &AdminUseCase{users: users, hasher: hasher}
}

// ListManagers lista todos los managers.
func (uc *AdminUseCase) ListManagers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.users.ListManagers(ctx)
	if err != nil {
		return nil, err
	}
	return entitiesToUserResponses(list), nil
}

// RegisterManager da de alta un manager con contraseña temporal.
func (uc *AdminUseCase) RegisterManager(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, err := newUser(uc.hasher, in, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	if _, err := uc.users.Register(ctx, user); err != nil {
		return nil, err
	}
	out := entityToUserResponse(user)
	return &out, nil
}

// MarkPasswordReset obliga al usuario a elegir contraseña nueva en su próximo login.
func (uc *AdminUseCase) MarkPasswordReset(ctx context.Context, userID int) error {
	return uc.users.MarkPasswordResetRequired(ctx, userID)
}
