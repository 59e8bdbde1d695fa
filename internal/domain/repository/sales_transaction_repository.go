package repository

import (
	"context"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// SalesTransactionRepository consultas de solo lectura sobre ventas.
type SalesTransactionRepository interface {
	// ReportForManager cuenta ventas por vendedor del equipo del manager, de mayor a menor.
	ReportForManager(ctx context.Context, managerID int) ([]entity.SalespersonSales, error)
	// ListForManager ventas de los vendedores del manager, más recientes primero.
	ListForManager(ctx context.Context, managerID int) ([]entity.SalesTransaction, error)
}
