package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de un alta: el id generado.
type IDResponse struct {
	ID int `json:"id"`
}
