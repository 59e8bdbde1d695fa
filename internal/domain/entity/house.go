package entity

// Estados de casa (tabla house_statuses). Solo el inicial se usa al crear.
const (
	HouseStatusActive = 1
)

// House representa una casa (territorio de venta) de un manager, asignada a uno de sus vendedores.
type House struct {
	ID                    int
	Street                string
	City                  string
	District              string // en minúsculas al persistir
	ZipCode               string
	Country               string
	ManagerID             int
	AssignedSalespersonID int
	StatusID              int
	// AssignedSalespersonName se calcula al leer (join con users); no se persiste.
	AssignedSalespersonName string
}
