package main

import (
	"context"
	"net/http"
	"os"

	"github.com/dmtumanov/beanline-backend/api/routes"
	"github.com/dmtumanov/beanline-backend/internal/assistant"
	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/order"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	"github.com/dmtumanov/beanline-backend/internal/promo"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/db"
	"github.com/dmtumanov/beanline-backend/pkg/host"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/metrics"
	"github.com/dmtumanov/beanline-backend/pkg/migrate"
	"github.com/dmtumanov/beanline-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
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

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
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

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	hostClient, err := host.NewClient(cfg.Host)
	if err != nil {
		logg.Error(context.Background(), "failed to create host client", err)
		os.Exit(1)
	}

	menu := catalog.Default()
	carts := cart.NewManager(menu)
	promoSvc := promo.NewService(promo.NewRepository(dbClient.DB()))
	prefsSvc := prefs.NewService(redisClient)
	assistantSvc := assistant.NewService(assistant.NewClient(cfg.Assistant), menu)
	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)

	orderSvc := order.NewService(
		carts,
		promoSvc,
		order.NewRepository(dbClient.DB()),
		hostClient,
		orderMetrics,
		logg,
		cfg.Checkout.MinOrderTotal,
	)

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
			redisClient,
			menu,
			carts,
			promoSvc,
			orderSvc,
			prefsSvc,
			assistantSvc,
			hostClient,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
