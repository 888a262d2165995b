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

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	incomeRepo := postgres.NewIncomeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	opportunityRepo := postgres.NewOpportunityRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Control de acceso por membresía, compartido por todos los casos de uso
	guard := access.NewGuard(membershipRepo)
	refs := usecase.NewReferences(clientRepo, productRepo, guard)

	authUC := auth.NewAuthUseCase(userRepo, membershipRepo, tokenRepo, txRunner, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Issuer:        cfg.JWT.Issuer,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	summaryUC := analytics.NewSummaryUseCase(analyticsRepo, guard, cfg.App.Location)
	dashboardUC := analytics.NewDashboardUseCase(summaryUC, analytics.Factors{
		OpexRatio:    cfg.Dashboard.OpexRatio,
		GrowthFactor: cfg.Dashboard.GrowthFactor,
	})

	authLimiter, err := httpRouter.NewRateLimiter(cfg.RateLimit.Auth)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit.Auth).Msg("RATE_LIMIT_AUTH inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs (generado con swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "CRM API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo, membershipRepo, userRepo, guard, txRunner),
		ClientUC:      usecase.NewClientUseCase(clientRepo, guard),
		IncomeUC:      usecase.NewIncomeUseCase(incomeRepo, guard, refs),
		ExpenseUC:     usecase.NewExpenseUseCase(expenseRepo, guard),
		ActivityUC:    usecase.NewActivityUseCase(activityRepo, guard, refs),
		OpportunityUC: usecase.NewOpportunityUseCase(opportunityRepo, guard, refs),
		QuoteUC:       usecase.NewQuoteUseCase(quoteRepo, companyRepo, guard, refs, txRunner, infrapdf.NewQuotePDFGenerator()),
		ContractUC:    usecase.NewContractUseCase(contractRepo, guard, refs),
		DocumentUC:    usecase.NewDocumentUseCase(documentRepo, guard, refs),
		ProductUC:     usecase.NewProductUseCase(productRepo, categoryRepo, guard),
		CampaignUC:    usecase.NewCampaignUseCase(campaignRepo, guard),
		TicketUC:      usecase.NewTicketUseCase(ticketRepo, guard, refs),
		SummaryUC:     summaryUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		AuthLimiter:   authLimiter,
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

// runMigrations aplica las migraciones embebidas pendientes.
func runMigrations(dsn string) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
