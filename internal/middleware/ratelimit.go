package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"jobdeck-gateway/internal/config"
)

// RateLimiter returns the per-IP rate limiting middleware configured from
// server.rate_limit. Install it only when cfg.Enabled is set; the rate has
// already been validated as positive by config.Load.
func RateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStore(rate.Limit(cfg.RequestsPerSecond))
	return echomw.RateLimiter(store)
}
