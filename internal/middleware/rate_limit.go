package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = time.Second
	rateLimitTimeout   = 100 * time.Millisecond
)

// RateLimitMiddleware limits requests per client IP.
//
// Counters live in Redis when the server has a client, in process memory
// otherwise.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware, or a pass-through one when
// rate limiting is disabled.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store(),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Could not identify client", false, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("identifier", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Rate limit exceeded")
		},
	})
}

func (r *RateLimitMiddleware) store() middleware.RateLimiterStore {
	cfg := r.server.Config.RateLimit
	if r.server.Redis != nil {
		return NewRedisRateLimiterStore(r.server.Redis, cfg.Burst, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})
}

// RecordRateLimitHit records a New Relic custom event for a denied request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// RedisRateLimiterStore is a fixed window counter shared by every instance
// of the service: at most limit requests per identifier per second.
//
// Redis failures fail open so an unreachable Redis never takes the API down.
type RedisRateLimiterStore struct {
	client *redis.Client
	limit  int64
	logger *zerolog.Logger
	now    func() time.Time
}

func NewRedisRateLimiterStore(client *redis.Client, limit int, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		limit:  int64(limit),
		logger: logger,
		now:    time.Now,
	}
}

// Allow implements middleware.RateLimiterStore.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitTimeout)
	defer cancel()

	window := s.now().Truncate(rateLimitWindow).Unix()
	key := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, identifier, window)

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*rateLimitWindow)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return count.Val() <= s.limit, nil
}
