package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain/repository"
	"github.com/scannercafe/sync-api/internal/infrastructure/cache"
	"github.com/scannercafe/sync-api/internal/infrastructure/excel"
	"github.com/scannercafe/sync-api/internal/infrastructure/pdf"
	"github.com/scannercafe/sync-api/internal/infrastructure/postgres"
	"github.com/scannercafe/sync-api/internal/infrastructure/webhook"
	httpRouter "github.com/scannercafe/sync-api/internal/interfaces/http"
	"github.com/scannercafe/sync-api/pkg/config"
	"github.com/scannercafe/sync-api/pkg/logger"
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

	workspaceRepo := postgres.NewWorkspaceRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	// Caché de resolución de workspaces — opcional, REDIS_ADDR vacío lo desactiva.
	var workspaceCache repository.WorkspaceCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, resolviendo siempre contra PostgreSQL")
		} else {
			workspaceCache = cache.NewWorkspaceCache(rdb, time.Duration(cfg.Redis.TTLMin)*time.Minute)
			defer rdb.Close()
		}
	}

	// Webhook de resultados de sincronización — opcional, URL vacía lo desactiva.
	var notifier usecase.SyncNotifier
	if cfg.Webhook.URL != "" {
		notifier = webhook.NewNotifier(cfg.Webhook.URL, time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second)
	}

	workspaceUC := usecase.NewWorkspaceUseCase(workspaceRepo, workspaceCache)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	syncUC := usecase.NewSyncUseCase(productRepo, saleRepo, notifier)
	reportUC := usecase.NewReportUseCase(saleRepo, pdf.NewSummaryPDFGenerator(), excel.NewRangeExporter())
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    5 * 1024 * 1024, // lotes bulk de catálogos grandes
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ScannerCafe Sync API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Workspaces: workspaceUC,
		Products:   productUC,
		Sales:      saleUC,
		Sync:       syncUC,
		Reports:    reportUC,
		Settings:   settingsUC,
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
