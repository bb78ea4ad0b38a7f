package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/router"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)

	log := logger.NewLogger(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("new relic disabled")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
