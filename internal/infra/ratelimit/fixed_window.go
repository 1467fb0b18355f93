// Package ratelimit provides a Redis-backed fixed window limiter for login attempts.
package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"catalog/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultPrefix = "catalog:login"
	redisTimeout  = 2 * time.Second
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// FixedWindowLimiter limits attempts per key in a fixed time window shared through Redis.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time

	client *redis.Client
	logger *slog.Logger
}

// NewFixedWindowLimiter creates a limiter backed by the Redis server at addr.
func NewFixedWindowLimiter(addr, password, prefix string, limit int, window time.Duration, logger *slog.Logger) (*FixedWindowLimiter, error) {
	if limit <= 0 {
		return nil, errors.New("rate limiter requires a positive limit")
	}
	if window < time.Millisecond {
		return nil, errors.New("rate limiter window must be at least 1ms")
	}

	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("rate limiter redis addr is required")
	}

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &FixedWindowLimiter{
		limit:  limit,
		window: window,
		prefix: prefix,
		now:    time.Now,
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		logger: logger,
	}, nil
}

// Allow reports whether key is still within quota. Redis failures deny the attempt.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	slot := l.now().UTC().UnixMilli() / windowMs
	redisKey := l.prefix + ":" + key + ":" + strconv.FormatInt(slot, 10)

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		if l.logger != nil {
			l.logger.WarnContext(ctx, "Login rate limiter unavailable, denying attempt",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false
	}

	return count <= int64(l.limit)
}

// Close releases the Redis connection pool.
func (l *FixedWindowLimiter) Close() error {
	return errors.WithStack(l.client.Close())
}

// Params holds dependencies for the login limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLoginLimiter builds the limiter from loginRateLimit. It returns nil when the section is absent.
func NewLoginLimiter(params Params) (*FixedWindowLimiter, error) {
	cfg := params.Config.LoginRateLimit
	if cfg == nil {
		params.Logger.Info("Login rate limiting disabled")

		return nil, nil
	}

	limiter, err := NewFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.Prefix, cfg.Limit, cfg.Window, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return limiter.Close()
		},
	})

	return limiter, nil
}
