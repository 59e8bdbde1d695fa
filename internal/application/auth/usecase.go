package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/jwt"
	"github.com/jhoicas/door-to-door/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher *password.Hasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := uc.hasher.Verify(in.Password, user.PasswordSalt, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, int(user.RoleID), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.LoginResponse{
		Token:              token,
		MustUpdatePassword: user.MustUpdatePassword,
		User:               toUserResponse(user),
	}, nil
}

// ChangePassword reemplaza la contraseña del usuario autenticado y limpia el flag
// de cambio obligatorio. El email se toma de la fila guardada, ya normalizado.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int, in dto.ChangePasswordRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	salt, hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	ok, err := uc.userRepo.ResetPassword(ctx, user.EmailAddress, salt, hash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOperationFailed
	}
	return nil
}

// toUserResponse proyecta el usuario sin salt ni hash.
func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.EmailAddress,
		Role:               u.RoleID.String(),
		MustUpdatePassword: u.MustUpdatePassword,
	}
}
