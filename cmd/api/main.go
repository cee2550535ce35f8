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
	"github.com/jcastro/stockapp-api/internal/application/auth"
	appstock "github.com/jcastro/stockapp-api/internal/application/stock"
	appstore "github.com/jcastro/stockapp-api/internal/application/store"
	domainstock "github.com/jcastro/stockapp-api/internal/domain/stock"
	"github.com/jcastro/stockapp-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/stockapp-api/internal/interfaces/http"
	"github.com/jcastro/stockapp-api/pkg/config"
	"github.com/jcastro/stockapp-api/pkg/logger"
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

	stockRepo := postgres.NewStockRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	clock := domainstock.SystemClock{}

	bulkIngestUC := appstock.NewBulkIngestUseCase(txRunner, storeRepo)
	reconcileUC := appstock.NewReconcileUseCase(stockRepo, clock)
	stockQueryUC := appstock.NewQueryUseCase(stockRepo)
	storeUC := appstore.NewUseCase(storeRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "StockApp API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockQuery: stockQueryUC,
		BulkIngest: bulkIngestUC,
		StoreUC:    storeUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Bucle de reconciliación dentro del proceso (opcional): cuando no hay un
	// cron del host que invoque cmd/reconciler, corre una vez al día a la hora
	// configurada.
	stopReconcile := make(chan struct{})
	if cfg.Reconcile.Enabled {
		go reconcileLoop(reconcileUC, cfg.Reconcile.Hour, log, stopReconcile)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(stopReconcile)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// reconcileLoop dispara la reconciliación diaria a la hora UTC indicada.
func reconcileLoop(uc *appstock.ReconcileUseCase, hour int, log *logger.Logger, stop <-chan struct{}) {
	for {
		timer := time.NewTimer(time.Until(nextRun(time.Now().UTC(), hour)))
		select {
		case <-stop:
			timer.Stop()
			return
		case <-timer.C:
		}
		count, err := uc.Reconcile(time.Time{})
		if err != nil {
			log.Error().Err(err).Msg("reconciliación de stocks")
			continue
		}
		log.Info().Int64("count", count).Msg("stocks transicionados a in_stock")
	}
}

// nextRun devuelve la próxima ocurrencia de la hora indicada (UTC).
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
