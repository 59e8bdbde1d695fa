package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario. MustUpdatePassword indica que el cliente
// debe pedir una contraseña nueva antes de continuar.
type LoginResponse struct {
	Token              string       `json:"token"`
	MustUpdatePassword bool         `json:"must_update_password"`
	User               UserResponse `json:"user"`
}

// ChangePasswordRequest contraseña nueva del usuario autenticado.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterUserRequest alta de manager (por un administrador) o de vendedor (por un manager).
// La contraseña es temporal: el usuario queda obligado a cambiarla.
type RegisterUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

// UserResponse salida de un usuario (sin salt ni hash).
type UserResponse struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustUpdatePassword bool   `json:"must_update_password"`
}
