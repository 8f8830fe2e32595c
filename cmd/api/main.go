package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/Catalogo-admin/internal/infrastructure/catalogapi"
	"github.com/jhoicas/Catalogo-admin/internal/infrastructure/rediscache"
	httpRouter "github.com/jhoicas/Catalogo-admin/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-admin/pkg/config"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	remote := catalogapi.NewClient(catalogapi.Options{
		BaseURL:       cfg.Catalog.BaseURL,
		Timeout:       cfg.Catalog.Timeout,
		ServiceSecret: cfg.Catalog.ServiceSecret,
		ServiceIssuer: cfg.Catalog.ServiceIssuer,
		Debug:         cfg.Catalog.Debug,
	}, log)

	// Caché de atributos opcional: sin REDIS_ADDR o con Redis caído se lee siempre del servicio.
	var attrCache ports.AttributeCache
	if cfg.Redis.Enabled() {
		rdb, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de atributos deshabilitada")
		} else {
			defer rdb.Close()
			attrCache = rediscache.NewAttributeCache(rdb, cfg.Redis.TTL, log)
		}
	}

	tracker := submission.NewTracker()
	attributeCatalog := usecase.NewAttributeCatalog(remote, attrCache, log)
	categoryUC := usecase.NewCategoryUseCase(remote, remote, tracker, log)
	attributeUC := usecase.NewAttributeUseCase(attributeCatalog, remote, tracker, log)
	variantUC := usecase.NewVariantUseCase(attributeCatalog, remote, remote, tracker, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		AttributeUC: attributeUC,
		VariantUC:   variantUC,
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
