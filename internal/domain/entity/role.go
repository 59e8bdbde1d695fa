package entity

import "strings"

// Role identificador persistido de rol (tabla roles). Los valores son estables:
// la migración inicial los inserta con estos ids.
type Role int

const (
	RoleAdministrator Role = 1
	RoleManager       Role = 2
	RoleSalesperson   Role = 3
)

var roleNames = map[Role]string{
	RoleAdministrator: "Administrator",
	RoleManager:       "Manager",
	RoleSalesperson:   "Salesperson",
}

// String devuelve el nombre del rol tal como figura en roles.name.
func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "Unknown"
}

// Valid indica si r es uno de los tres roles conocidos.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) IsAdministrator() bool { return r == RoleAdministrator }
func (r Role) IsManager() bool       { return r == RoleManager }
func (r Role) IsSalesperson() bool   { return r == RoleSalesperson }

// ParseRole acepta el nombre del rol sin distinguir mayúsculas.
func ParseRole(s string) (Role, bool) {
	for r, n := range roleNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return r, true
		}
	}
	return 0, false
}
