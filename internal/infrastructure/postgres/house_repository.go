package postgres

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/domain"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/policy"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/normalize"
)

var _ repository.HouseRepository = (*HouseRepo)(nil)

type houseRow struct {
	ID              int    `db:"id"`
	Street          string `db:"street"`
	City            string `db:"city"`
	District        string `db:"district"`
	ZipCode         string `db:"zip_code"`
	Country         string `db:"country"`
	ManagerID       int    `db:"manager_id"`
	SalespersonID   int    `db:"salesperson_id"`
	StatusID        int    `db:"status_id"`
	SalespersonName string `db:"salesperson_name"`
}

var houseRecord = record{
	name: "house",
	columns: []string{"id", "street", "city", "district", "zip_code", "country",
		"manager_id", "salesperson_id", "status_id", "salesperson_name"},
}

func (r houseRow) toEntity() entity.House {
	return entity.House{
		ID:                      r.ID,
		Street:                  r.Street,
		City:                    r.City,
		District:                r.District,
		ZipCode:                 r.ZipCode,
		Country:                 r.Country,
		ManagerID:               r.ManagerID,
		AssignedSalespersonID:   r.SalespersonID,
		StatusID:                r.StatusID,
		AssignedSalespersonName: r.SalespersonName,
	}
}

// HouseRepo implementación del puerto HouseRepository sobre PostgreSQL.
type HouseRepo struct {
	gw    *Gateway
	users *UserRepo
}

// NewHouseRepository construye el adaptador de persistencia para casas.
func NewHouseRepository(db DBTX) *HouseRepo {
	return &HouseRepo{gw: NewGateway(db), users: NewUserRepository(db)}
}

// ListForManager lista las casas del manager con el nombre del vendedor asignado.
func (r *HouseRepo) ListForManager(ctx context.Context, managerID int) ([]entity.House, error) {
	query := `
		SELECT h.id, h.street, h.city, h.district, h.zip_code, h.country,
		       h.manager_id, h.salesperson_id, h.status_id,
		       (u.first_name || ' ' || u.last_name) AS salesperson_name
		FROM houses AS h
		JOIN users AS u ON h.salesperson_id = u.id
		WHERE h.manager_id = $1
		ORDER BY h.id`
	rows, err := queryAll[houseRow](ctx, r.gw, "list houses", houseRecord, query, managerID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.House, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create comprueba primero que el vendedor asignado está vinculado al manager;
// si no lo está no se escribe nada. La casa nace con el estado inicial.
func (r *HouseRepo) Create(ctx context.Context, house *entity.House) (int, error) {
	if house == nil {
		return 0, domain.ErrInvalidInput
	}
	team, err := r.users.ListSalespeopleOf(ctx, house.ManagerID)
	if err != nil {
		return 0, err
	}
	if err := policy.CanAssign(team, house); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO houses (street, city, district, zip_code, country, manager_id, salesperson_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	district := normalize.Lower(house.District)
	id, err := r.gw.InsertReturningID(ctx, "insert house", query,
		house.Street, house.City, district, house.ZipCode, house.Country,
		house.ManagerID, house.AssignedSalespersonID, entity.HouseStatusActive,
	)
	if err != nil {
		return 0, err
	}
	house.ID = id
	house.District = district
	house.StatusID = entity.HouseStatusActive
	if sp, ok := policy.Member(team, house.AssignedSalespersonID); ok {
		house.AssignedSalespersonName = sp.FullName()
	}
	return id, nil
}
