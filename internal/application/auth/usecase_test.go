package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/door-to-door/internal/application/apptest"
	"github.com/jhoicas/door-to-door/internal/application/auth"
	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/pkg/jwt"
	"github.com/jhoicas/door-to-door/pkg/password"
)

const testSecret = "test-secret"

func setup(t *testing.T) (*auth.AuthUseCase, apptest.Users, *password.Hasher) {
	t.Helper()
	store := apptest.NewStore()
	users := apptest.Users{S: store}
	hasher := password.NewHasher(bcrypt.MinCost)
	uc := auth.NewAuthUseCase(users, hasher, auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "door-to-door"})
	return uc, users, hasher
}

func seedUser(t *testing.T, users apptest.Users, hasher *password.Hasher, email, plain string, role entity.Role) int {
	t.Helper()
	salt, hash, err := hasher.Hash(plain)
	require.NoError(t, err)
	id, err := users.Register(context.Background(), &entity.User{
		FirstName: "Ann", LastName: "Lee", EmailAddress: email,
		PasswordHash: hash, PasswordSalt: salt, RoleID: role,
	})
	require.NoError(t, err)
	return id
}

func TestLogin_CredencialesValidas_EmiteTokenConRol(t *testing.T) {
	uc, users, hasher := setup(t)
	id := seedUser(t, users, hasher, "Ann@Co.com", "s3cret-pass", entity.RoleManager)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANN@co.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.True(t, res.MustUpdatePassword, "un usuario recién registrado debe cambiar la contraseña")
	assert.Equal(t, "ann@co.com", res.User.Email)
	assert.Equal(t, "Manager", res.User.Role)

	gotID, gotRole, err := jwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, int(entity.RoleManager), gotRole)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users, hasher := setup(t)
	seedUser(t, users, hasher, "ann@co.com", "s3cret-pass", entity.RoleManager)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@co.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_MismoErrorQuePasswordIncorrecta(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@co.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_EntradaInvalida(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "no-es-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_FalloDelAlmacen(t *testing.T) {
	store := apptest.NewStore()
	store.Err = errors.New("connection refused")
	uc := auth.NewAuthUseCase(apptest.Users{S: store}, password.NewHasher(bcrypt.MinCost), auth.JWTConfig{Secret: testSecret})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@co.com", Password: "x"})
	_, ok := domain.IsStorageError(err)
	assert.True(t, ok)
}

func TestChangePassword_LimpiaFlagYPermiteLoginNuevo(t *testing.T) {
	uc, users, hasher := setup(t)
	id := seedUser(t, users, hasher, "Ann@Co.com", "temporal-1", entity.RoleSalesperson)

	require.NoError(t, uc.ChangePassword(context.Background(), id, dto.ChangePasswordRequest{Password: "definitiva-2"}))

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@co.com", Password: "definitiva-2"})
	require.NoError(t, err)
	assert.False(t, res.MustUpdatePassword)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ann@co.com", Password: "temporal-1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword_Validaciones(t *testing.T) {
	uc, users, hasher := setup(t)
	id := seedUser(t, users, hasher, "ann@co.com", "temporal-1", entity.RoleSalesperson)

	err := uc.ChangePassword(context.Background(), id, dto.ChangePasswordRequest{Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(context.Background(), id+99, dto.ChangePasswordRequest{Password: "definitiva-2"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
