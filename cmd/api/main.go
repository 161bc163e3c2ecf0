package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Talento-api/internal/application/analytics"
	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/invitation"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/infrastructure/mail"
	"github.com/jhoicas/Talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Talento-api/internal/interfaces/http"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/logger"
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

	// Sin secreto de firma no hay sesiones válidas: abortar el arranque.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Seed idempotente del superadmin (serializado entre procesos).
	if err := postgres.SeedSuperadmin(ctx, pool, cfg.Seed.SuperadminEmail, cfg.Seed.SuperadminPassword, cfg.Seed.SuperadminName); err != nil {
		log.Fatal().Err(err).Msg("seed del superadmin")
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	designationRepo := postgres.NewDesignationRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP, log)

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Tokens.ResetTTL, cfg.App.BaseURL, log)
	invitationUC := invitation.NewInvitationUseCase(companyRepo, txRunner, mailer, cfg.Tokens.InvitationTTL, cfg.App.BaseURL, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	designationUC := usecase.NewDesignationUseCase(designationRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	leaveUC := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Talento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		InvitationUC:  invitationUC,
		CompanyUC:     companyUC,
		UserUC:        userUC,
		DepartmentUC:  departmentUC,
		DesignationUC: designationUC,
		EmployeeUC:    employeeUC,
		LeaveUC:       leaveUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
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
