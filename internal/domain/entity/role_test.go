package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

func TestRole_ValoresPersistidos(t *testing.T) {
	assert.Equal(t, 1, int(entity.RoleAdministrator))
	assert.Equal(t, 2, int(entity.RoleManager))
	assert.Equal(t, 3, int(entity.RoleSalesperson))
}

func TestRole_Predicados(t *testing.T) {
	assert.True(t, entity.RoleAdministrator.IsAdministrator())
	assert.False(t, entity.RoleAdministrator.IsManager())
	assert.True(t, entity.RoleManager.IsManager())
	assert.True(t, entity.RoleSalesperson.IsSalesperson())
	assert.False(t, entity.RoleSalesperson.IsManager())

	assert.True(t, entity.RoleManager.Valid())
	assert.False(t, entity.Role(0).Valid())
	assert.False(t, entity.Role(4).Valid())
	assert.Equal(t, "Unknown", entity.Role(9).String())
}

func TestParseRole(t *testing.T) {
	r, ok := entity.ParseRole(" manager ")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleManager, r)

	_, ok = entity.ParseRole("owner")
	assert.False(t, ok)
}

func TestUser_FullName(t *testing.T) {
	u := entity.User{FirstName: "Ann", LastName: "Lee"}
	assert.Equal(t, "Ann Lee", u.FullName())
}
