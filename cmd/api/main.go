package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Tesoreria-api/internal/application/auth"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	appledger "github.com/jhoicas/Tesoreria-api/internal/application/ledger"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Tesoreria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Tesoreria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Tesoreria-api/internal/interfaces/http"
	"github.com/jhoicas/Tesoreria-api/pkg/config"
	"github.com/jhoicas/Tesoreria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	errorLogRepo := postgres.NewErrorLogRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)

	// PDF: hoja imprimible del registro diario
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	ledgerUC := appledger.NewLedgerUseCase(ledgerRepo, settingRepo, pdfGenerator)

	sectionUC := usecase.NewSectionUseCase(sectionRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	dashboardUC := usecase.NewDashboardUseCase(userRepo, ledgerRepo)
	errorLogUC := usecase.NewErrorLogUseCase(errorLogRepo)

	bootstrapAdmin(ctx, cfg.Bootstrap, userUC, userRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tesorería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		LedgerUC:    ledgerUC,
		SectionUC:   sectionUC,
		SettingUC:   settingUC,
		DashboardUC: dashboardUC,
		ErrorLogUC:  errorLogUC,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// bootstrapAdmin crea el administrador inicial en el primer arranque.
// Solo actúa si hay password configurado y la company aún no tiene admins.
func bootstrapAdmin(ctx context.Context, cfg config.BootstrapConfig, userUC *usecase.UserUseCase, userRepo repository.UserRepository, log *logger.Logger) {
	if cfg.Password == "" {
		return
	}
	admins, err := userRepo.CountActiveAdmins(ctx, cfg.CompanyID)
	if err != nil {
		log.Error().Err(err).Msg("bootstrap: contar admins")
		return
	}
	if admins > 0 {
		return
	}
	_, err = userUC.Create(ctx, cfg.CompanyID, dto.CreateUserRequest{
		Username: cfg.Username,
		Password: cfg.Password,
		FullName: cfg.FullName,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		log.Error().Err(err).Msg("bootstrap: crear admin inicial")
		return
	}
	log.Info().
		Str("company_id", cfg.CompanyID).
		Str("username", cfg.Username).
		Msg("admin inicial creado")
}
