package app

import (
	"context"
	"net/http"

	"github.com/mkargin/shop-registry/config"
	cachemem "github.com/mkargin/shop-registry/internal/cache/memory"
	"github.com/mkargin/shop-registry/internal/client/userapi"
	"github.com/mkargin/shop-registry/internal/repo/postgres"
	rest "github.com/mkargin/shop-registry/internal/transport/http"
	"github.com/mkargin/shop-registry/internal/usecase"
	"github.com/mkargin/shop-registry/pkg/logger"
	"github.com/mkargin/shop-registry/pkg/metrics"
	"github.com/mkargin/shop-registry/pkg/telemetry"
	"github.com/mkargin/shop-registry/pkg/validate"
)

// BootstrapOrder — собирает зависимости order-сервиса и возвращает приложение,
// функцию очистки и ошибку. Отличается от user-сервиса клиентом userapi
// на пути создания заказа.
func BootstrapOrder(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.ConnectWithRetry(
		ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns,
		cfg.Postgres.ConnectAttempts, cfg.Postgres.ConnectDelay, logg,
	)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	snapshotCache := cachemem.NewSnapshotCache(cfg.Cache.Capacity)
	orderRepo := postgres.NewOrderRepository(pool)
	orderValidator := validate.NewOrderValidator()
	userChecker := userapi.New(cfg.UserAPI.BaseURL, cfg.UserAPI.Timeout, logg)
	orderService := usecase.NewOrderService(orderRepo, snapshotCache, userChecker, logg, orderValidator)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewOrderHandler(orderService, logg)
	router := rest.NewOrderRouter(handler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
