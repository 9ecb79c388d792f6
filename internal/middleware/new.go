package middleware

import (
	"task-reminder/pkg/log"
)

// Config holds the settings the middlewares need.
type Config struct {
	APIKey          string
	RateLimitPerMin int
	TelegramSecret  string
}

type Middleware struct {
	l              log.Logger
	apiKey         string
	telegramSecret string
	limiter        *rateLimiter
}

// New builds the middleware set. A zero RateLimitPerMin disables rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{
		l:              l,
		apiKey:         cfg.APIKey,
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
