// Package apptest implementaciones en memoria de los puertos de repositorio para tests
// de casos de uso y handlers. Reproducen la semántica observable de los adaptadores
// PostgreSQL: emails en minúsculas, flag de contraseña forzado, unicidad y pertenencia.
package apptest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/policy"
	"github.com/jhoicas/door-to-door/pkg/normalize"
)

var errDuplicate = errors.New("duplicate key")

// Store estado compartido por los tres repositorios.
type Store struct {
	mu     sync.Mutex
	users  []entity.User
	links  map[int][]int // manager -> vendedores
	houses []entity.House
	sales  []entity.SalesTransaction
	// Err si no es nil lo devuelve cualquier operación (simula caída del almacén).
	Err error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{links: make(map[int][]int)}
}

// AddSale registra una venta directamente; el sistema no expone alta de ventas.
func (s *Store) AddSale(tx entity.SalesTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = len(s.sales) + 1
	s.sales = append(s.sales, tx)
}

func (s *Store) fail(op string) error {
	if s.Err != nil {
		return &domain.StorageError{Op: op, Code: domain.StorageOther, Err: s.Err}
	}
	return nil
}

func (s *Store) team(managerID int) []entity.User {
	out := make([]entity.User, 0)
	for _, id := range s.links[managerID] {
		for _, u := range s.users {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out
}

// ── Users ─────────────────────────────────────────────────────────────────────

// Users implementa repository.UserRepository.
type Users struct{ S *Store }

func (r Users) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("find user by email"); err != nil {
		return nil, err
	}
	email = normalize.Email(email)
	for _, u := range r.S.users {
		if u.EmailAddress == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r Users) FindByID(_ context.Context, id int) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("find user by id"); err != nil {
		return nil, err
	}
	for _, u := range r.S.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r Users) Register(_ context.Context, user *entity.User) (int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("insert user"); err != nil {
		return 0, err
	}
	email := normalize.Email(user.EmailAddress)
	for _, u := range r.S.users {
		if u.EmailAddress == email {
			return 0, &domain.StorageError{Op: "insert user", Code: domain.StorageUniqueViolation,
				SQLState: "23505", Constraint: "users_email_address_key", Err: errDuplicate}
		}
	}
	user.ID = len(r.S.users) + 1
	user.EmailAddress = email
	user.MustUpdatePassword = true
	r.S.users = append(r.S.users, *user)
	return user.ID, nil
}

func (r Users) ListManagers(_ context.Context) ([]entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("list managers"); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0)
	for _, u := range r.S.users {
		if u.RoleID.IsManager() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r Users) ListSalespeopleOf(_ context.Context, managerID int) ([]entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("list salespeople"); err != nil {
		return nil, err
	}
	return r.S.team(managerID), nil
}

func (r Users) MarkPasswordResetRequired(_ context.Context, userID int) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("mark password reset"); err != nil {
		return err
	}
	for i := range r.S.users {
		if r.S.users[i].ID == userID {
			r.S.users[i].MustUpdatePassword = true
			return nil
		}
	}
	return domain.ErrOperationFailed
}

func (r Users) ResetPassword(_ context.Context, email, salt, hash string) (bool, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("reset password"); err != nil {
		return false, err
	}
	for i := range r.S.users {
		if r.S.users[i].EmailAddress == email {
			r.S.users[i].PasswordSalt = salt
			r.S.users[i].PasswordHash = hash
			r.S.users[i].MustUpdatePassword = false
			return true, nil
		}
	}
	return false, nil
}

func (r Users) LinkManagerToSalesperson(_ context.Context, managerID, salespersonID int) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("link manager to salesperson"); err != nil {
		return err
	}
	for _, id := range r.S.links[managerID] {
		if id == salespersonID {
			return &domain.StorageError{Op: "link manager to salesperson", Code: domain.StorageUniqueViolation,
				SQLState: "23505", Constraint: "manager_salesperson_pkey", Err: errDuplicate}
		}
	}
	r.S.links[managerID] = append(r.S.links[managerID], salespersonID)
	return nil
}

func (r Users) IsLinked(ctx context.Context, salespersonID, managerID int) (bool, error) {
	team, err := r.ListSalespeopleOf(ctx, managerID)
	if err != nil {
		return false, err
	}
	return policy.IsLinked(team, salespersonID), nil
}

// ── Houses ────────────────────────────────────────────────────────────────────

// Houses implementa repository.HouseRepository.
type Houses struct{ S *Store }

func (r Houses) ListForManager(_ context.Context, managerID int) ([]entity.House, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("list houses"); err != nil {
		return nil, err
	}
	out := make([]entity.House, 0)
	for _, h := range r.S.houses {
		if h.ManagerID != managerID {
			continue
		}
		for _, u := range r.S.users {
			if u.ID == h.AssignedSalespersonID {
				h.AssignedSalespersonName = u.FullName()
			}
		}
		out = append(out, h)
	}
	return out, nil
}

func (r Houses) Create(_ context.Context, house *entity.House) (int, error) {
	if house == nil {
		return 0, domain.ErrInvalidInput
	}
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("insert house"); err != nil {
		return 0, err
	}
	team := r.S.team(house.ManagerID)
	if err := policy.CanAssign(team, house); err != nil {
		return 0, err
	}
	house.ID = len(r.S.houses) + 1
	house.District = normalize.Lower(house.District)
	house.StatusID = entity.HouseStatusActive
	if sp, ok := policy.Member(team, house.AssignedSalespersonID); ok {
		house.AssignedSalespersonName = sp.FullName()
	}
	r.S.houses = append(r.S.houses, *house)
	return house.ID, nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

// Sales implementa repository.SalesTransactionRepository.
type Sales struct{ S *Store }

func (r Sales) ReportForManager(_ context.Context, managerID int) ([]entity.SalespersonSales, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("sales report"); err != nil {
		return nil, err
	}
	team := r.S.team(managerID)
	out := make([]entity.SalespersonSales, 0)
	for _, u := range team {
		n := 0
		for _, tx := range r.S.sales {
			if tx.SalespersonID == u.ID {
				n++
			}
		}
		if n > 0 {
			out = append(out, entity.SalespersonSales{FirstName: u.FirstName, LastName: u.LastName, NumSales: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NumSales > out[j].NumSales })
	return out, nil
}

func (r Sales) ListForManager(_ context.Context, managerID int) ([]entity.SalesTransaction, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if err := r.S.fail("list sales transactions"); err != nil {
		return nil, err
	}
	out := make([]entity.SalesTransaction, 0)
	for _, tx := range r.S.sales {
		if policy.IsLinked(r.S.team(managerID), tx.SalespersonID) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
