package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTransaction venta registrada por un vendedor sobre una casa. Solo lectura en este sistema.
type SalesTransaction struct {
	ID            int
	Date          time.Time
	HouseID       int
	ProductID     int
	SalespersonID int
	Amount        decimal.Decimal // no negativo (CHECK en la tabla)
}

// SalespersonSales fila del reporte de ventas por vendedor.
type SalespersonSales struct {
	FirstName string
	LastName  string
	NumSales  int
}
