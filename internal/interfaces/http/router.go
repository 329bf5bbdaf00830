package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/Tesoreria-api/internal/application/auth"
	"github.com/jhoicas/Tesoreria-api/internal/application/ledger"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	LedgerUC    *ledger.LedgerUseCase
	SectionUC   *usecase.SectionUseCase
	SettingUC   *usecase.SettingUseCase
	DashboardUC *usecase.DashboardUseCase
	ErrorLogUC  *usecase.ErrorLogUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	er := newErrorReporter(deps.Log, deps.ErrorLogUC)

	api := app.Group("/api")

	// Auth (público). El login lleva su propio rate limit para frenar
	// ataques de fuerza bruta distribuidos por IP.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, er)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
	}), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, er)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Registro diario de operaciones
	operations := protected.Group("/operations")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, er)
	operations.Post("/", ledgerHandler.Upsert)
	operations.Get("/", ledgerHandler.List)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.LedgerUC, er)
	reports.Get("/daily/:date", reportHandler.Daily)
	reports.Get("/daily/:date/pdf", reportHandler.DailyPDF)
	reports.Get("/monthly/:year/:month", reportHandler.Monthly)

	// Secciones (lectura para todos, alta solo admin)
	sections := protected.Group("/sections")
	sectionHandler := NewSectionHandler(deps.SectionUC, er)
	sections.Get("/", sectionHandler.Get)
	sections.Post("/:category/items", RequireRole(entity.RoleAdmin), sectionHandler.AddItem)

	// Configuración (solo admin)
	settings := protected.Group("/settings", RequireRole(entity.RoleAdmin))
	settingHandler := NewSettingHandler(deps.SettingUC, er)
	settings.Get("/", settingHandler.Get)
	settings.Put("/", settingHandler.Update)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, er)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)

	// Reporte de errores del cliente
	errorHandler := NewErrorLogHandler(deps.ErrorLogUC, er)
	protected.Post("/errors", errorHandler.Report)
}
