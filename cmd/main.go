package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crowdfund/internal/adapter/auth"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/sqlite"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
	"crowdfund/internal/telemetry"
)

// store is what every storage driver provides.
type store interface {
	port.CampaignRepository
	port.Ledger
}

// main is the entry point of the crowdfund service. It loads configuration,
// opens the configured storage, wires authentication, tracing and the use
// case, then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.String("driver", cfg.Storage.NormalizedDriver()), slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Ledger.SeedDemo {
		if err = db.Seed(ctx, st, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		logger.Error("auth config error", slog.Any("error", err))
		return
	}

	svc := usecase.NewCampaignUseCase(st, st, logger)
	handler := httpadapter.NewHandler(svc, verifier, logger, httpadapter.Options{
		AllowDeposits: cfg.Ledger.AllowDeposits,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Storage.NormalizedDriver()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore opens the storage driver named in cfg. The returned func
// releases it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store, func(), error) {
	switch cfg.Storage.NormalizedDriver() {
	case configs.DriverMemory:
		logger.Warn("using in-memory storage; state is lost on exit")
		return memory.NewStore(), func() {}, nil

	case configs.DriverSQLite:
		conn, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		s, err := sqlite.NewStore(conn)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return s, func() { _ = conn.Close() }, nil

	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	}
}
