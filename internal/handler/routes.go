// Package handler wires the gateway's HTTP routes.
package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobdeck-gateway/internal/config"
	"jobdeck-gateway/internal/metrics"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, relay *RelayHandler, health *HealthHandler, oauth *OAuthHandler, m *metrics.Metrics) {
	e.GET("/healthz", health.Healthz)
	e.GET("/gateway/status", health.Status)

	e.GET("/api/health", relay.BackendHealth)
	e.GET("/api/jobs", relay.Jobs)
	e.POST("/api/jobs", relay.Jobs)

	e.GET("/auth/callback", oauth.Callback)

	if cfg.Metrics.Enabled && m != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(
			promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}),
		))
	}
}
