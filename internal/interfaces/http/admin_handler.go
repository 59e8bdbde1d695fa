package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/application/usecase"
)

// AdminHandler rutas del administrador.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListManagers godoc
// @Summary      Listar managers
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/managers [get]
func (h *AdminHandler) ListManagers(c *fiber.Ctx) error {
	list, err := h.uc.ListManagers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RegisterManager godoc
// @Summary      Registrar manager
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "datos del manager"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/managers [post]
func (h *AdminHandler) RegisterManager(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterManager(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkPasswordReset godoc
// @Summary      Forzar cambio de contraseña
// @Tags         admin
// @Param        id   path  int  true  "id del usuario"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/reset-password [post]
func (h *AdminHandler) MarkPasswordReset(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.MarkPasswordReset(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
