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
	"github.com/jhoicas/floor-assistant/internal/bootstrap"
	httpRouter "github.com/jhoicas/floor-assistant/internal/interfaces/http"
	"github.com/jhoicas/floor-assistant/pkg/config"
	"github.com/jhoicas/floor-assistant/pkg/logger"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: todas las rutas /api responderán 401")
	}

	ctx := context.Background()
	comps, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar dependencias")
	}
	defer comps.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90, // el agente puede encadenar varias rondas LLM
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Floor Assistant API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		status, code := "ok", fiber.StatusOK
		if err := comps.Pool.Ping(c.UserContext()); err != nil {
			status, code = "degraded", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"service":  cfg.App.Name,
			"store_id": comps.Scope.StoreID,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:  comps.Registry,
		Agent:     comps.Agent,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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
