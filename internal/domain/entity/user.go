package entity

// InvalidID valor de ID de un registro aún no persistido.
const InvalidID = -1

// User representa un usuario del sistema (administrador, manager o vendedor).
// Hash y Salt son valores opacos; el dominio no conoce el algoritmo.
type User struct {
	ID                 int
	FirstName          string
	LastName           string
	EmailAddress       string // siempre en minúsculas una vez persistido
	PasswordHash       string
	PasswordSalt       string
	RoleID             Role
	MustUpdatePassword bool
}

// FullName nombre para mostrar.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
