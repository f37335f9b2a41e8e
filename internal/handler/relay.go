package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"jobdeck-gateway/internal/gateway"
	"jobdeck-gateway/internal/model"
)

// RelayHandler serves the API routes that forward to the backend. Each
// handler passes the gateway result through verbatim: the gateway's status,
// body, and content type are the response, never re-wrapped.
type RelayHandler struct {
	gateway *gateway.Gateway
	logger  *slog.Logger
}

// NewRelayHandler creates a RelayHandler.
func NewRelayHandler(gw *gateway.Gateway, logger *slog.Logger) *RelayHandler {
	return &RelayHandler{
		gateway: gw,
		logger:  logger.With("component", "relay_handler"),
	}
}

// BackendHealth relays the backend's own health endpoint.
func (h *RelayHandler) BackendHealth(c echo.Context) error {
	return h.relay(c, "/api/health")
}

// Jobs relays job listing (GET) and creation (POST) to the backend.
// Method, query string, headers, and body travel as-is; the gateway owns
// header defaulting and response validation.
func (h *RelayHandler) Jobs(c echo.Context) error {
	return h.relay(c, "/api/jobs")
}

func (h *RelayHandler) relay(c echo.Context, endpoint string) error {
	req := c.Request()

	res := h.gateway.Forward(&model.ProxyRequest{
		Ctx:      req.Context(),
		Endpoint: endpoint,
		Method:   req.Method,
		Query:    req.URL.Query(),
		Header:   req.Header,
		Body:     req.Body,
	})

	return c.JSONBlob(res.StatusCode, res.Body)
}
