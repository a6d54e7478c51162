// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/hyeonlog/taskhub/internal/adapters/http"
	"github.com/hyeonlog/taskhub/internal/adapters/http/handlers"
	"github.com/hyeonlog/taskhub/internal/adapters/http/middleware"

	"github.com/hyeonlog/taskhub/internal/adapters/clients/weather"
	"github.com/hyeonlog/taskhub/internal/adapters/storage"
	"github.com/hyeonlog/taskhub/internal/app"
	"github.com/hyeonlog/taskhub/internal/platform/auth"
	"github.com/hyeonlog/taskhub/internal/platform/config"
	"github.com/hyeonlog/taskhub/internal/platform/health"
	"github.com/hyeonlog/taskhub/internal/platform/httpclient"
	"github.com/hyeonlog/taskhub/internal/platform/logging"
	"github.com/hyeonlog/taskhub/internal/platform/telemetry"
	"github.com/hyeonlog/taskhub/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(storage.NewHealthChecker(do.MustInvoke[*gorm.DB](injector)))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		return storage.Open(cfg.Database.DSN)
	})

	do.Provide(injector, func(i do.Injector) (ports.UserStore, error) {
		return storage.NewUserStore(do.MustInvoke[*gorm.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		return storage.NewTodoStore(do.MustInvoke[*gorm.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ManagerStore, error) {
		return storage.NewManagerStore(do.MustInvoke[*gorm.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommentStore, error) {
		return storage.NewCommentStore(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Downstream weather API.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Weather, "weather-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WeatherClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return weather.New(client, logger), nil
	})

	// Credentials and tokens.
	do.Provide(injector, func(_ do.Injector) (ports.TokenCodec, error) {
		return auth.NewJWTCodec(cfg.Auth.Secret, cfg.Auth.TokenTTL), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.UserStore](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[ports.TokenCodec](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[ports.UserStore](i),
			do.MustInvoke[ports.PasswordHasher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		return app.NewTodoService(
			do.MustInvoke[ports.TodoStore](i),
			do.MustInvoke[ports.WeatherClient](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ManagerService, error) {
		return app.NewManagerService(
			do.MustInvoke[ports.TodoStore](i),
			do.MustInvoke[ports.UserStore](i),
			do.MustInvoke[ports.ManagerStore](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommentService, error) {
		return app.NewCommentService(
			do.MustInvoke[ports.TodoStore](i),
			do.MustInvoke[ports.CommentStore](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP layer.
	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ManagerHandler, error) {
		return handlers.NewManagerHandler(do.MustInvoke[ports.ManagerService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CommentHandler, error) {
		return handlers.NewCommentHandler(do.MustInvoke[ports.CommentService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.AuthHandler](i),
			do.MustInvoke[*handlers.TodoHandler](i),
			do.MustInvoke[*handlers.ManagerHandler](i),
			do.MustInvoke[*handlers.CommentHandler](i),
			do.MustInvoke[*handlers.UserHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			do.MustInvoke[ports.TokenCodec](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
