package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/datanova-api/docs"
	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/datanova-api/internal/infrastructure/pdf"
	"github.com/jhoicas/datanova-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/datanova-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/datanova-api/internal/interfaces/http"
	"github.com/jhoicas/datanova-api/pkg/config"
	"github.com/jhoicas/datanova-api/pkg/logger"
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
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var repos httpRouter.Repositories
	switch cfg.App.Storage {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		repos = httpRouter.Repositories{
			Users: store.Users, Categories: store.Categories, Workflows: store.Workflows,
			Employees: store.Employees, Products: store.Products, Sales: store.Sales,
			Performances: store.Performances, Logs: store.Logs,
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("migrations", applied).Msg("esquema al día")

		repos = httpRouter.Repositories{
			Users:        postgres.NewUserRepository(pool),
			Categories:   postgres.NewCategoryRepository(pool),
			Workflows:    postgres.NewWorkflowRepository(pool),
			Employees:    postgres.NewEmployeeRepository(pool),
			Products:     postgres.NewProductRepository(pool),
			Sales:        postgres.NewSaleRepository(pool),
			Performances: postgres.NewPerformanceRepository(pool),
			Logs:         postgres.NewLogRepository(pool),
		}
	}

	// Lista de tokens revocados: Redis si está configurado, si no en proceso.
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		repos.Denylist = infraredis.NewDenylist(rdb)
	} else {
		repos.Denylist = memory.NewDenylist()
	}

	deps := httpRouter.NewRouterDeps(repos, httpRouter.Options{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		ImportMaxRows: cfg.Import.MaxRows,
		Reports:       infrapdf.NewWorkflowReportGenerator(),
		Logger:        log,
	})
	app := httpRouter.NewApp(cfg.App.Name, deps, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "DataNova API",
		}))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
