package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// SalesReportPDFGenerator puerto de salida para la representación PDF del reporte de ventas.
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, manager *entity.User, rows []entity.SalespersonSales, generatedAt time.Time) ([]byte, error)
}
