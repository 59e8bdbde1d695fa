package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/domain"
)

// LocalError guarda el error interno de la petición para el log de acceso.
const LocalError = "error"

// respondError traduce errores de dominio a status + ErrorResponse.
// Los 5xx no exponen el detalle al cliente; queda en c.Locals para el log.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	if status >= fiber.StatusInternalServerError {
		c.Locals(LocalError, err)
	}
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	var decErr *domain.DecodeError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorizedAssignment):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "NOT_YOUR_SALESPERSON", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrLinkFailed):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "LINK_FAILED", Message: err.Error()}
	case errors.Is(err, domain.ErrOperationFailed):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "OPERATION_FAILED", Message: err.Error()}
	case errors.As(err, &decErr):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "respuesta del almacén con formato inesperado"}
	}
	if se, ok := domain.IsStorageError(err); ok {
		if se.IsUniqueViolation() {
			return fiber.StatusConflict, dto.ErrorResponse{Code: "ALREADY_EXISTS", Message: "el registro ya existe"}
		}
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "STORAGE", Message: "error de almacenamiento"}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

// paramID lee un id entero positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
