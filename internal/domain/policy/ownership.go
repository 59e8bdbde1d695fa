// Package policy contiene las comprobaciones de pertenencia manager-vendedor.
// Son funciones puras: reciben el equipo ya cargado y no hacen I/O.
package policy

import (
	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// IsLinked recorre el equipo del manager buscando al vendedor. O(tamaño del equipo):
// los equipos son pequeños y el equipo se relee en cada comprobación.
func IsLinked(team []entity.User, salespersonID int) bool {
	_, ok := Member(team, salespersonID)
	return ok
}

// Member devuelve el vendedor del equipo con ese id.
func Member(team []entity.User, salespersonID int) (entity.User, bool) {
	for _, u := range team {
		if u.ID == salespersonID {
			return u, true
		}
	}
	return entity.User{}, false
}

// CanAssign devuelve ErrUnauthorizedAssignment si la casa se asigna a alguien fuera del equipo.
func CanAssign(team []entity.User, house *entity.House) error {
	if house == nil || !IsLinked(team, house.AssignedSalespersonID) {
		return domain.ErrUnauthorizedAssignment
	}
	return nil
}
