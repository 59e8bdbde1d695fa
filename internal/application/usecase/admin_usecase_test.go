package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/door-to-door/internal/application/apptest"
	"github.com/jhoicas/door-to-door/internal/application/usecase"
	"github.com/jhoicas/door-to-door/internal/domain"
)

func TestAdmin_RegisterManager_ForzaRolYCambioDeContrasena(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	m, err := f.admin.RegisterManager(ctx, registerReq("Ann", "Ann@Co.com"))
	require.NoError(t, err)
	assert.Equal(t, "Manager", m.Role)
	assert.Equal(t, "ann@co.com", m.Email)
	assert.True(t, m.MustUpdatePassword)

	list, err := f.admin.ListManagers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestAdmin_RegisterManager_EntradaInvalida(t *testing.T) {
	f := newFixture()
	req := registerReq("Ann", "no-es-email")
	_, err := f.admin.RegisterManager(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = registerReq("Ann", "ann@co.com")
	req.Password = "corta"
	_, err = f.admin.RegisterManager(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdmin_ListManagers_ExcluyeVendedores(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m, _ := f.admin.RegisterManager(ctx, registerReq("Ann", "ann@co.com"))
	_, err := f.manager.RegisterSalesperson(ctx, m.ID, registerReq("Sam", "sam@co.com"))
	require.NoError(t, err)

	list, err := f.admin.ListManagers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdmin_MarkPasswordReset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m, _ := f.admin.RegisterManager(ctx, registerReq("Ann", "ann@co.com"))

	assert.NoError(t, f.admin.MarkPasswordReset(ctx, m.ID))
	assert.ErrorIs(t, f.admin.MarkPasswordReset(ctx, 999), domain.ErrOperationFailed)
}

func TestUser_GetByID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m, _ := f.admin.RegisterManager(ctx, registerReq("Ann", "ann@co.com"))

	uc := usecase.NewUserUseCase(apptest.Users{S: f.store})
	got, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)

	_, err = uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
