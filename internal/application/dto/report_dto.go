package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRow ventas de un vendedor.
type SalesReportRow struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	NumSales  int    `json:"num_sales"`
}

// SalesReportResponse reporte de ventas del equipo del manager.
type SalesReportResponse struct {
	ManagerID  int              `json:"manager_id"`
	TotalSales int              `json:"total_sales"`
	Rows       []SalesReportRow `json:"rows"`
}

// SalesTransactionResponse una venta; el importe viaja como string decimal.
type SalesTransactionResponse struct {
	ID            int             `json:"id"`
	Date          time.Time       `json:"date"`
	HouseID       int             `json:"house_id"`
	ProductID     int             `json:"product_id"`
	SalespersonID int             `json:"salesperson_id"`
	Amount        decimal.Decimal `json:"amount"`
}
