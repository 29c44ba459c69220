package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hyrpunkten/hyrpunkten-backend/api/routes"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/catalog"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/quotations"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/signing"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/config"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/holidays"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/metrics"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/migrate"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/pricing"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	calendar, err := holidays.Load(cfg.Pricing.HolidayCalendarPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load holiday calendar", err)
		os.Exit(1)
	}
	{
		ctx := logg.WithFields(context.Background(), map[string]any{
			"calendar_version": calendar.Version(),
			"calendar_years":   calendar.Years(),
		})
		logg.Info(ctx, "holiday calendar loaded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pricingMetrics := metrics.NewPricingMetrics(registry)

	engine := pricing.New(calendar)
	catalogRepo := catalog.NewRepository(dbClient.DB())
	bookingRepo := bookings.NewRepository(dbClient.DB())
	quotationRepo := quotations.NewRepository(dbClient.DB())

	bookingService, err := bookings.NewService(bookingRepo, dbClient, catalogRepo, engine, pricingMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	quotationService, err := quotations.NewService(quotationRepo, bookingRepo, dbClient, catalogRepo, engine, pricingMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create quotation service", err)
		os.Exit(1)
	}

	signingService, err := signing.NewService(quotationRepo, bookingRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create signing service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			registry,
			catalogRepo,
			bookingService,
			quotationService,
			signingService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
