// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - optional redis client (rate limit counters)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/config"
	loggerPkg "github.com/deppfellow/items-api/internal/logger"
)

// redisPingTimeout bounds the startup connectivity check.
const redisPingTimeout = 5 * time.Second

// newRelicFlushTimeout bounds how long shutdown waits for pending APM data.
const newRelicFlushTimeout = 10 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger(s)
//   - the redis connection, if configured
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// Redis is nil unless config.Redis.Address is set.
	Redis *redis.Client

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
// A Redis that cannot be reached at startup is logged and kept: the client
// reconnects lazily and the health endpoint reports it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	if cfg.Redis.Address == "" {
		logger.Info().Msg("redis address not configured, rate limit counters stay in memory")
		return server, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	// Instrument Redis commands when New Relic is enabled.
	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to redis, continuing")
	} else {
		logger.Info().Str("address", cfg.Redis.Address).Msg("connected to redis")
	}

	server.Redis = redisClient
	return server, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The router is passed in as handler; *echo.Echo satisfies http.Handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// It requires SetupHTTPServer to be called first. A server stopped by
// Shutdown returns nil.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// In-flight requests get until ctx is done to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}

	s.LoggerService.Shutdown(newRelicFlushTimeout)

	return nil
}
