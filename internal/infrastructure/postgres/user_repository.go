package postgres

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/policy"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/normalize"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userRow columnas de users, en el orden del SELECT.
type userRow struct {
	ID             int    `db:"id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	EmailAddress   string `db:"email_address"`
	Hash           string `db:"hash"`
	Salt           string `db:"salt"`
	RoleID         int    `db:"role_id"`
	UpdatePassword bool   `db:"update_password"`
}

var userRecord = record{
	name:    "user",
	columns: []string{"id", "first_name", "last_name", "email_address", "hash", "salt", "role_id", "update_password"},
}

const userColumns = `id, first_name, last_name, email_address, hash, salt, role_id, update_password`

func (r userRow) toEntity() entity.User {
	return entity.User{
		ID:                 r.ID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		EmailAddress:       r.EmailAddress,
		PasswordHash:       r.Hash,
		PasswordSalt:       r.Salt,
		RoleID:             entity.Role(r.RoleID),
		MustUpdatePassword: r.UpdatePassword,
	}
}

func toUsers(rows []userRow) []entity.User {
	out := make([]entity.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	gw *Gateway
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DBTX) *UserRepo {
	return &UserRepo{gw: NewGateway(db)}
}

// FindByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) FindByEmail(ctx context.Context, emailAddress string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email_address = $1 LIMIT 1`
	row, ok, err := queryFirst[userRow](ctx, r.gw, "find user by email", userRecord, query, normalize.Email(emailAddress))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := row.toEntity()
	return &u, nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(ctx context.Context, id int) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	row, ok, err := queryFirst[userRow](ctx, r.gw, "find user by id", userRecord, query, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := row.toEntity()
	return &u, nil
}

// Register persiste un usuario nuevo. update_password siempre queda en TRUE:
// el usuario debe elegir su contraseña en el primer login.
func (r *UserRepo) Register(ctx context.Context, user *entity.User) (int, error) {
	query := `
		INSERT INTO users (first_name, last_name, email_address, hash, salt, role_id, update_password)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id`
	email := normalize.Email(user.EmailAddress)
	id, err := r.gw.InsertReturningID(ctx, "insert user", query,
		user.FirstName, user.LastName, email, user.PasswordHash, user.PasswordSalt, int(user.RoleID),
	)
	if err != nil {
		return 0, err
	}
	user.ID = id
	user.EmailAddress = email
	user.MustUpdatePassword = true
	return id, nil
}

// ListManagers lista los usuarios con rol Manager.
func (r *UserRepo) ListManagers(ctx context.Context) ([]entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role_id = $1`
	rows, err := queryAll[userRow](ctx, r.gw, "list managers", userRecord, query, int(entity.RoleManager))
	if err != nil {
		return nil, err
	}
	return toUsers(rows), nil
}

// ListSalespeopleOf lista los usuarios vinculados al manager.
func (r *UserRepo) ListSalespeopleOf(ctx context.Context, managerID int) ([]entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE id IN (SELECT salesperson_id FROM manager_salesperson WHERE manager_id = $1)`
	rows, err := queryAll[userRow](ctx, r.gw, "list salespeople", userRecord, query, managerID)
	if err != nil {
		return nil, err
	}
	return toUsers(rows), nil
}

// MarkPasswordResetRequired obliga al usuario a cambiar su contraseña en el próximo login.
func (r *UserRepo) MarkPasswordResetRequired(ctx context.Context, userID int) error {
	n, err := r.gw.Exec(ctx, "mark password reset", `UPDATE users SET update_password = TRUE WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n != 1 {
		return domain.ErrOperationFailed
	}
	return nil
}

// ResetPassword reemplaza salt/hash y limpia el flag. El email se compara tal cual llega:
// el llamador debe pasarlo ya normalizado.
func (r *UserRepo) ResetPassword(ctx context.Context, emailAddress, salt, hash string) (bool, error) {
	query := `UPDATE users SET salt = $1, hash = $2, update_password = FALSE WHERE email_address = $3`
	n, err := r.gw.Exec(ctx, "reset password", query, salt, hash, emailAddress)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// LinkManagerToSalesperson registra al vendedor en el equipo del manager.
func (r *UserRepo) LinkManagerToSalesperson(ctx context.Context, managerID, salespersonID int) error {
	query := `INSERT INTO manager_salesperson (manager_id, salesperson_id) VALUES ($1, $2)`
	n, err := r.gw.Exec(ctx, "link manager to salesperson", query, managerID, salespersonID)
	if err != nil {
		return err
	}
	if n != 1 {
		return domain.ErrLinkFailed
	}
	return nil
}

// IsLinked relee el equipo del manager y lo recorre.
func (r *UserRepo) IsLinked(ctx context.Context, salespersonID, managerID int) (bool, error) {
	team, err := r.ListSalespeopleOf(ctx, managerID)
	if err != nil {
		return false, err
	}
	return policy.IsLinked(team, salespersonID), nil
}
