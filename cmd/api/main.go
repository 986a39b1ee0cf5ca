package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/contable-pro/internal/application/auth"
	"github.com/tu-usuario/contable-pro/internal/application/documentos"
	"github.com/tu-usuario/contable-pro/internal/application/informes"
	"github.com/tu-usuario/contable-pro/internal/domain/store"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/memstore"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/contable-pro/internal/interfaces/http"
	"github.com/tu-usuario/contable-pro/pkg/config"
	"github.com/tu-usuario/contable-pro/pkg/logger"
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
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var almacen store.Store
	switch cfg.DB.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		slotStore := postgres.NewSlotStore(pool)
		if err := slotStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de ranuras")
		}
		almacen = slotStore
	default:
		log.Warn().Msg("almacén en memoria: los datos se pierden al cerrar")
		almacen = memstore.New()
	}

	documentosUC := documentos.New(almacen, cfg.Monedas, log)
	informesUC := informes.New(almacen)
	authUC := auth.New(cfg.Puerta, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DocumentosUC: documentosUC,
		InformesUC:   informesUC,
		AuthUC:       authUC,
		Monedas:      cfg.Monedas,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
