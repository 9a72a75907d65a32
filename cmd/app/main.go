package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(configs.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.Database.DSN())
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := postgres.Migrate(gormDB); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	dispatcher := app.Dispatcher()
	dispatcher.Start(context.WithoutCancel(ctx))

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	e := httpin.NewEcho(app.CreateHTTPServer())
	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port)
		logger.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	jobManager.StopAll(shutdownCtx)
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		logger.Warn("dispatcher shutdown", zap.Error(err), zap.Any("stats", dispatcher.Stats()))
	}

	logger.Info("stopped")
	return nil
}
