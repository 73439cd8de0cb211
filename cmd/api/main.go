package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
	infrapdf "github.com/jhoicas/erp-manufactura/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/erp-manufactura/internal/interfaces/http"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	if cfg.Storage.SeedFixtures {
		set, err := fixtures.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("cargar datos semilla")
		}
		if err := backend.Seed(ctx, set, log.Named("seed")); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos")
		}
	}

	repos := backend.Repositories()
	records := usecase.NewRecords(repos)

	// PDF: versión imprimible de órdenes de compra y venta
	orderPDFUC := usecase.NewOrderPDFUseCase(repos.PurchaseOrders, repos.SalesOrders, infrapdf.NewOrderPDFGenerator(cfg.App.Name))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Records:  records,
		OrderPDF: orderPDFUC,
		Storage:  backend.Driver(),
		Metrics:  httpRouter.NewMetrics(reg),
		Gatherer: reg,
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
