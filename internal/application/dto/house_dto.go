package dto

// CreateHouseRequest alta de casa; el manager es el usuario autenticado.
type CreateHouseRequest struct {
	Street        string `json:"street" validate:"required,max=200"`
	City          string `json:"city" validate:"required,max=100"`
	District      string `json:"district" validate:"required,max=100"`
	ZipCode       string `json:"zip_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`
	SalespersonID int    `json:"salesperson_id" validate:"required,gt=0"`
}

// HouseResponse casa con el nombre del vendedor asignado.
type HouseResponse struct {
	ID              int    `json:"id"`
	Street          string `json:"street"`
	City            string `json:"city"`
	District        string `json:"district"`
	ZipCode         string `json:"zip_code"`
	Country         string `json:"country"`
	SalespersonID   int    `json:"salesperson_id"`
	SalespersonName string `json:"salesperson_name,omitempty"`
	StatusID        int    `json:"status_id"`
}
