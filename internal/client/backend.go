// Package client provides the HTTP client used to reach the backend service.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"jobdeck-gateway/internal/config"
	"jobdeck-gateway/internal/metrics"
)

// BackendClient sends requests to the configured backend service.
type BackendClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewBackendClient creates a BackendClient with connection pooling.
// A timeout_seconds of 0 leaves the client without an overall deadline;
// the gateway's observed contract has no upstream timeout by default.
// The metrics parameter is optional; pass nil to disable backend metrics recording.
func NewBackendClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *BackendClient {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Backend.IdleConnections,
		MaxIdleConnsPerHost: cfg.Backend.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &BackendClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		logger:  logger.With("component", "backend_client"),
		metrics: m,
	}
}

// NewBackendClientForTest creates a BackendClient around a caller-supplied
// http.Client. This is intended only for tests that need a custom transport,
// such as httptest TLS servers with self-signed certificates.
func NewBackendClientForTest(hc *http.Client, logger *slog.Logger) *BackendClient {
	return &BackendClient{
		httpClient: hc,
		logger:     logger.With("component", "backend_client"),
	}
}

// Do builds and executes one request against the backend and returns the raw
// response. The caller is responsible for closing the response body. The
// provided context controls the lifetime of the request: when it is canceled
// (e.g. client disconnects), the backend request is also canceled.
func (c *BackendClient) Do(ctx context.Context, method, url string, header http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	req.Header = header

	c.logger.Debug("backend request",
		"method", req.Method,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	label := metrics.NormalizeMethod(req.Method)

	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamDuration.WithLabelValues(label).Observe(duration)
		}
		return nil, fmt.Errorf("backend request: %w", err)
	}

	if c.metrics != nil {
		status := strconv.Itoa(resp.StatusCode)
		c.metrics.UpstreamDuration.WithLabelValues(label).Observe(duration)
		c.metrics.UpstreamResponses.WithLabelValues(label, status).Inc()
	}

	return resp, nil
}
