package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/domain/repository"
)

var _ repository.SalesTransactionRepository = (*SalesTransactionRepo)(nil)

type salesCountRow struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	NumSales  int    `db:"num_sales"`
}

var salesCountRecord = record{
	name:    "salesperson sales",
	columns: []string{"first_name", "last_name", "num_sales"},
}

type salesTransactionRow struct {
	ID            int             `db:"id"`
	Date          time.Time       `db:"date"`
	HouseID       int             `db:"house_id"`
	ProductID     int             `db:"product_id"`
	SalespersonID int             `db:"salesperson_id"`
	Amount        decimal.Decimal `db:"amount"`
}

var salesTransactionRecord = record{
	name:    "sales transaction",
	columns: []string{"id", "date", "house_id", "product_id", "salesperson_id", "amount"},
}

// SalesTransactionRepo consultas de solo lectura sobre sales_transactions.
type SalesTransactionRepo struct {
	gw *Gateway
}

// NewSalesTransactionRepository construye el adaptador de ventas.
func NewSalesTransactionRepository(db DBTX) *SalesTransactionRepo {
	return &SalesTransactionRepo{gw: NewGateway(db)}
}

// ReportForManager cuenta las ventas de cada vendedor del equipo del manager.
// Se agrupa por u.id para no fusionar vendedores homónimos.
func (r *SalesTransactionRepo) ReportForManager(ctx context.Context, managerID int) ([]entity.SalespersonSales, error) {
	const query = `
	SELECT u.first_name, u.last_name, COUNT(st.id)::INT AS num_sales
	FROM users AS u
	JOIN sales_transactions AS st ON u.id = st.salesperson_id
	WHERE u.id IN (SELECT ms.salesperson_id FROM manager_salesperson AS ms WHERE ms.manager_id = $1)
	GROUP BY u.id, u.first_name, u.last_name
	ORDER BY num_sales DESC, u.id`

	rows, err := queryAll[salesCountRow](ctx, r.gw, "sales report", salesCountRecord, query, managerID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.SalespersonSales, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.SalespersonSales{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			NumSales:  row.NumSales,
		})
	}
	return out, nil
}

// ListForManager ventas de los vendedores vinculados al manager, más recientes primero.
func (r *SalesTransactionRepo) ListForManager(ctx context.Context, managerID int) ([]entity.SalesTransaction, error) {
	const query = `
	SELECT st.id, st.date, st.house_id, st.product_id, st.salesperson_id, st.amount
	FROM sales_transactions AS st
	WHERE st.salesperson_id IN (SELECT ms.salesperson_id FROM manager_salesperson AS ms WHERE ms.manager_id = $1)
	ORDER BY st.date DESC, st.id DESC`

	rows, err := queryAll[salesTransactionRow](ctx, r.gw, "list sales transactions", salesTransactionRecord, query, managerID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.SalesTransaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.SalesTransaction{
			ID:            row.ID,
			Date:          row.Date,
			HouseID:       row.HouseID,
			ProductID:     row.ProductID,
			SalespersonID: row.SalespersonID,
			Amount:        row.Amount,
		})
	}
	return out, nil
}
