package usecase

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/password"
)

// UserUseCase consultas sobre el usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID; domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := entityToUserResponse(user)
	return &out, nil
}

// newUser valida la petición y arma la entidad con el rol indicado y la contraseña hasheada.
func newUser(hasher *password.Hasher, in dto.RegisterUserRequest, role entity.Role) (*entity.User, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	salt, hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:           entity.InvalidID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		RoleID:       role,
	}, nil
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.EmailAddress,
		Role:               u.RoleID.String(),
		MustUpdatePassword: u.MustUpdatePassword,
	}
}

func entitiesToUserResponses(users []entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, entityToUserResponse(&users[i]))
	}
	return out
}
