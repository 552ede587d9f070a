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

	"github.com/jhoicas/botica-api/internal/application/analytics"
	"github.com/jhoicas/botica-api/internal/application/auth"
	"github.com/jhoicas/botica-api/internal/application/sales"
	"github.com/jhoicas/botica-api/internal/application/usecase"
	infracache "github.com/jhoicas/botica-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/botica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/botica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/botica-api/internal/interfaces/http"
	"github.com/jhoicas/botica-api/internal/scheduler"
	"github.com/jhoicas/botica-api/pkg/config"
	"github.com/jhoicas/botica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de reportes: Redis si está configurado, si no se calcula siempre.
	var reportCache analytics.ReportCache = infracache.Noop{}
	if cfg.Redis.Addr != "" {
		rc := infracache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, reportes sin cache")
			_ = rc.Close()
		} else {
			reportCache = rc
			defer rc.Close()
		}
		cancel()
	}

	pdfGenerator := infrapdf.NewReportPDFGenerator(cfg.App.Name)
	reportUC := analytics.NewReportUseCase(saleRepo, reportCache, pdfGenerator, loc, log)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, saleRepo, loc)
	productUC := usecase.NewProductUseCase(productRepo, log)
	saleUC := sales.NewRegisterSaleUseCase(txRunner, saleRepo, reportUC, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Cambios hechos por fuera de la API (otra instancia, SQL directo) también invalidan reportes.
	listener := postgres.NewChangeListener(pool, log, func(ctx context.Context, channel, payload string) {
		reportUC.Invalidate(ctx)
	}, postgres.ChannelSales, postgres.ChannelProducts)
	go listener.Run(ctx)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(scheduler.Config{
			LowStockSpec:      cfg.Scheduler.LowStockCron,
			WeeklyBalanceSpec: cfg.Scheduler.WeeklyBalance,
			Location:          loc,
		}, productUC, reportUC, log)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler")
		}
	}

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
		Title:    "Botica API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		Location:    loc,
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
	if sched != nil {
		sched.Stop()
	}
	stop()

	log.Info().Msg("aplicación detenida")
}
