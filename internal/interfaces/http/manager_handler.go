package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/application/usecase"
)

// ManagerHandler rutas del manager; el manager es siempre el usuario del token.
type ManagerHandler struct {
	uc *usecase.ManagerUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc}
}

// ListSalespeople godoc
// @Summary      Vendedores del equipo
// @Tags         manager
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/manager/salespeople [get]
func (h *ManagerHandler) ListSalespeople(c *fiber.Ctx) error {
	list, err := h.uc.ListSalespeople(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RegisterSalesperson godoc
// @Summary      Registrar vendedor en el equipo
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "datos del vendedor"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manager/salespeople [post]
func (h *ManagerHandler) RegisterSalesperson(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterSalesperson(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListHouses godoc
// @Summary      Casas del manager
// @Tags         manager
// @Produce      json
// @Success      200  {array}  dto.HouseResponse
// @Router       /api/manager/houses [get]
func (h *ManagerHandler) ListHouses(c *fiber.Ctx) error {
	list, err := h.uc.ListHouses(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateHouse godoc
// @Summary      Crear casa asignada a un vendedor del equipo
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHouseRequest  true  "dirección y vendedor"
// @Success      201   {object}  dto.HouseResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/manager/houses [post]
func (h *ManagerHandler) CreateHouse(c *fiber.Ctx) error {
	var in dto.CreateHouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateHouse(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SalesReport godoc
// @Summary      Ventas por vendedor
// @Tags         manager
// @Produce      json
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/manager/reports/sales [get]
func (h *ManagerHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReportPDF godoc
// @Summary      Ventas por vendedor en PDF
// @Tags         manager
// @Produce      application/pdf
// @Success      200
// @Router       /api/manager/reports/sales.pdf [get]
func (h *ManagerHandler) SalesReportPDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.SalesReportPDF(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

// ListTransactions godoc
// @Summary      Ventas del equipo
// @Tags         manager
// @Produce      json
// @Success      200  {array}  dto.SalesTransactionResponse
// @Router       /api/manager/transactions [get]
func (h *ManagerHandler) ListTransactions(c *fiber.Ctx) error {
	list, err := h.uc.ListTransactions(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
