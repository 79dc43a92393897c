package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ainnoce10/ebf-backend/api/routes"
	authsvc "github.com/ainnoce10/ebf-backend/internal/auth"
	cartsvc "github.com/ainnoce10/ebf-backend/internal/cart"
	catalogsvc "github.com/ainnoce10/ebf-backend/internal/catalog"
	interventionsvc "github.com/ainnoce10/ebf-backend/internal/interventions"
	reportsvc "github.com/ainnoce10/ebf-backend/internal/reports"
	statssvc "github.com/ainnoce10/ebf-backend/internal/stats"
	synthesissvc "github.com/ainnoce10/ebf-backend/internal/synthesis"
	techsvc "github.com/ainnoce10/ebf-backend/internal/technicians"
	tickersvc "github.com/ainnoce10/ebf-backend/internal/ticker"
	transactionsvc "github.com/ainnoce10/ebf-backend/internal/transactions"
	"github.com/ainnoce10/ebf-backend/internal/users"
	"github.com/ainnoce10/ebf-backend/pkg/auth/session"
	"github.com/ainnoce10/ebf-backend/pkg/config"
	"github.com/ainnoce10/ebf-backend/pkg/db"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
	"github.com/ainnoce10/ebf-backend/pkg/metrics"
	"github.com/ainnoce10/ebf-backend/pkg/migrate"
	"github.com/ainnoce10/ebf-backend/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	gormDB := dbClient.DB()
	reportRepo := reportsvc.NewRepository(gormDB)
	transactionRepo := transactionsvc.NewRepository(gormDB)
	catalogRepo := catalogsvc.NewRepository(gormDB)

	authService, err := authsvc.NewService(users.NewRepository(gormDB), sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	reportService, err := reportsvc.NewService(reportRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}
	transactionService, err := transactionsvc.NewService(transactionRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create transaction service", err)
		os.Exit(1)
	}
	statsService, err := statssvc.NewService(reportRepo, transactionRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}
	synthesisService, err := synthesissvc.NewService(synthesissvc.NewClient(cfg.Synthesis), redisClient, cfg.Synthesis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create synthesis service", err)
		os.Exit(1)
	}
	catalogService, err := catalogsvc.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	cartStore, err := cartsvc.NewStore(redisClient, cfg.Cart.SnapshotTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cartsvc.NewService(cartStore, catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	technicianService, err := techsvc.NewService(techsvc.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create technician service", err)
		os.Exit(1)
	}
	interventionService, err := interventionsvc.NewService(interventionsvc.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create intervention service", err)
		os.Exit(1)
	}
	tickerService, err := tickersvc.NewService(tickersvc.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create ticker service", err)
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
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Redis:         redisClient,
			Sessions:      sessionManager,
			HTTPMetrics:   httpMetrics,
			Registry:      registry,
			Auth:          authService,
			Stats:         statsService,
			Synthesis:     synthesisService,
			Catalog:       catalogService,
			Cart:          cartService,
			Reports:       reportService,
			Transactions:  transactionService,
			Technicians:   technicianService,
			Interventions: interventionService,
			Ticker:        tickerService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
