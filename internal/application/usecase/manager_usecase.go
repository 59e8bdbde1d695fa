package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
	"github.com/jhoicas/door-to-door/pkg/password"
)

// ManagerUseCase operaciones de un manager sobre su equipo, sus casas y sus ventas.
// managerID es siempre el usuario autenticado.
type ManagerUseCase struct {
	users  repository.UserRepository
	houses repository.HouseRepository
	sales  repository.SalesTransactionRepository
	hasher *password.Hasher
	pdf    SalesReportPDFGenerator
	now    func() time.Time
}

// NewManagerUseCase construye el caso de uso inyectando sus dependencias.
func NewManagerUseCase(
	users repository.UserRepository,
	houses repository.HouseRepository,
	sales repository.SalesTransactionRepository,
	hasher *password.Hasher,
	pdf SalesReportPDFGenerator,
) *ManagerUseCase {
	return &ManagerUseCase{users: users, houses: houses, sales: sales, hasher: hasher, pdf: pdf, now: time.Now}
}

// ListSalespeople lista los vendedores vinculados al manager.
func (uc *ManagerUseCase) ListSalespeople(ctx context.Context, managerID int) ([]dto.UserResponse, error) {
	list, err := uc.users.ListSalespeopleOf(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return entitiesToUserResponses(list), nil
}

// RegisterSalesperson da de alta un vendedor y lo vincula al manager.
// Si el vínculo falla, el vendedor queda registrado sin equipo y se devuelve el error del vínculo.
func (uc *ManagerUseCase) RegisterSalesperson(ctx context.Context, managerID int, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, err := newUser(uc.hasher, in, entity.RoleSalesperson)
	if err != nil {
		return nil, err
	}
	id, err := uc.users.Register(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := uc.users.LinkManagerToSalesperson(ctx, managerID, id); err != nil {
		return nil, fmt.Errorf("salesperson %d registered but not linked: %w", id, err)
	}
	out := entityToUserResponse(user)
	return &out, nil
}

// ListHouses casas del manager.
func (uc *ManagerUseCase) ListHouses(ctx context.Context, managerID int) ([]dto.HouseResponse, error) {
	list, err := uc.houses.ListForManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HouseResponse, 0, len(list))
	for i := range list {
		out = append(out, houseToResponse(&list[i]))
	}
	return out, nil
}

// CreateHouse crea una casa asignada a un vendedor del equipo.
// domain.ErrUnauthorizedAssignment si el vendedor no pertenece al manager.
func (uc *ManagerUseCase) CreateHouse(ctx context.Context, managerID int, in dto.CreateHouseRequest) (*dto.HouseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	house := &entity.House{
		ID:                    entity.InvalidID,
		Street:                in.Street,
		City:                  in.City,
		District:              in.District,
		ZipCode:               in.ZipCode,
		Country:               in.Country,
		ManagerID:             managerID,
		AssignedSalespersonID: in.SalespersonID,
	}
	if _, err := uc.houses.Create(ctx, house); err != nil {
		return nil, err
	}
	out := houseToResponse(house)
	return &out, nil
}

// SalesReport ventas por vendedor del equipo, de mayor a menor.
func (uc *ManagerUseCase) SalesReport(ctx context.Context, managerID int) (*dto.SalesReportResponse, error) {
	rows, err := uc.sales.ReportForManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportResponse{ManagerID: managerID, Rows: make([]dto.SalesReportRow, 0, len(rows))}
	for _, r := range rows {
		out.TotalSales += r.NumSales
		out.Rows = append(out.Rows, dto.SalesReportRow{FirstName: r.FirstName, LastName: r.LastName, NumSales: r.NumSales})
	}
	return out, nil
}

// SalesReportPDF el mismo reporte renderizado en PDF; devuelve los bytes y el nombre de archivo.
func (uc *ManagerUseCase) SalesReportPDF(ctx context.Context, managerID int) ([]byte, string, error) {
	manager, err := uc.users.FindByID(ctx, managerID)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.sales.ReportForManager(ctx, managerID)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	b, err := uc.pdf.GenerateSalesReportPDF(ctx, manager, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("generate sales report pdf: %w", err)
	}
	return b, fmt.Sprintf("ventas_%d_%s.pdf", managerID, now.Format("20060102")), nil
}

// ListTransactions ventas del equipo, más recientes primero.
func (uc *ManagerUseCase) ListTransactions(ctx context.Context, managerID int) ([]dto.SalesTransactionResponse, error) {
	list, err := uc.sales.ListForManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.SalesTransactionResponse{
			ID:            t.ID,
			Date:          t.Date,
			HouseID:       t.HouseID,
			ProductID:     t.ProductID,
			SalespersonID: t.SalespersonID,
			Amount:        t.Amount,
		})
	}
	return out, nil
}

func houseToResponse(h *entity.House) dto.HouseResponse {
	return dto.HouseResponse{
		ID:              h.ID,
		Street:          h.Street,
		City:            h.City,
		District:        h.District,
		ZipCode:         h.ZipCode,
		Country:         h.Country,
		SalespersonID:   h.AssignedSalespersonID,
		SalespersonName: h.AssignedSalespersonName,
		StatusID:        h.StatusID,
	}
}
