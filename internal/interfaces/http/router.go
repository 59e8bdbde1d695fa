package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/door-to-door/internal/application/auth"
	"github.com/jhoicas/door-to-door/internal/application/usecase"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	AdminUC   *usecase.AdminUseCase
	ManagerUC *usecase.ManagerUseCase
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password", requireAuth, authHandler.ChangePassword)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Administrador
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := api.Group("/admin", requireAuth, RequireRole(entity.RoleAdministrator))
	admin.Get("/managers", adminHandler.ListManagers)
	admin.Post("/managers", adminHandler.RegisterManager)
	admin.Post("/users/:id/reset-password", adminHandler.MarkPasswordReset)

	// Manager
	managerHandler := NewManagerHandler(deps.ManagerUC)
	manager := api.Group("/manager", requireAuth, RequireRole(entity.RoleManager))
	manager.Get("/salespeople", managerHandler.ListSalespeople)
	manager.Post("/salespeople", managerHandler.RegisterSalesperson)
	manager.Get("/houses", managerHandler.ListHouses)
	manager.Post("/houses", managerHandler.CreateHouse)
	manager.Get("/reports/sales", managerHandler.SalesReport)
	manager.Get("/reports/sales.pdf", managerHandler.SalesReportPDF)
	manager.Get("/transactions", managerHandler.ListTransactions)
}
