// Package gateway implements the backend forwarding core: one request out,
// one JSON-validated result back, every failure normalized into the same
// envelope shape.
package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"jobdeck-gateway/internal/client"
	"jobdeck-gateway/internal/metrics"
	"jobdeck-gateway/internal/model"
)

// Base is the optional backend base address. The zero value means "not
// configured", which the gateway reports as a 503 without touching the
// network.
type Base struct {
	addr string
	set  bool
}

// NewBase normalizes and wraps a configured base address. An empty or
// blank value yields the unset Base. An address without an http:// or
// https:// prefix gets https:// prepended, so operators can configure a
// bare host or host:port.
func NewBase(addr string) Base {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return Base{}
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "https://" + addr
	}
	return Base{addr: strings.TrimSuffix(addr, "/"), set: true}
}

// Address returns the normalized base address and whether one is configured.
func (b Base) Address() (string, bool) {
	return b.addr, b.set
}

// Gateway forwards requests to the backend and validates the responses.
// It holds no per-request state; concurrent forwards are independent.
type Gateway struct {
	client  *client.BackendClient
	base    Base
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Gateway. The metrics parameter is optional; pass nil to
// disable outcome recording.
func New(c *client.BackendClient, base Base, logger *slog.Logger, m *metrics.Metrics) *Gateway {
	return &Gateway{
		client:  c,
		base:    base,
		logger:  logger.With("component", "gateway"),
		metrics: m,
	}
}

// Forward sends one request to <base><endpoint> and returns a normalized
// result. It never returns an error: every failure mode is converted into
// a ProxyResult holding a JSON error envelope, so callers can always relay
// the result as-is. On success the backend's status code passes through
// untouched and the body is the backend's own JSON.
func (g *Gateway) Forward(pr *model.ProxyRequest) *model.ProxyResult {
	base, ok := g.base.Address()
	if !ok {
		g.logger.Warn("forward refused: backend not configured", "endpoint", pr.Endpoint)
		return g.fail(kindNotConfigured, "")
	}

	target := base + pr.Endpoint
	if len(pr.Query) > 0 {
		target += "?" + pr.Query.Encode()
	}

	method := pr.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := g.client.Do(pr.Ctx, method, target, mergeHeaders(pr.Header), pr.Body)
	if err != nil {
		return g.fail(kindConnFailed, connDetails(err))
	}
	defer func() { _ = resp.Body.Close() }()

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		return g.fail(kindNonJSON, contentTypeDetails(ct))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The response never fully arrived; same bucket as a connect failure.
		return g.fail(kindConnFailed, connDetails(err))
	}

	// RawMessage keeps the validated bytes as-is, so a well-formed body
	// round-trips byte-exact through the gateway.
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return g.fail(kindInvalidJSON, err.Error())
	}

	g.record(kindSuccess)
	g.logger.Debug("forwarded",
		"endpoint", pr.Endpoint,
		"method", method,
		"status", resp.StatusCode,
	)

	return &model.ProxyResult{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}
}

func (g *Gateway) fail(k kind, details string) *model.ProxyResult {
	g.record(k)
	res := renderFailure(k, details)
	g.logger.Warn("forward failed",
		"outcome", k.String(),
		"status", res.StatusCode,
		"details", details,
	)
	return res
}

func (g *Gateway) record(k kind) {
	if g.metrics != nil {
		g.metrics.ForwardOutcomes.WithLabelValues(k.String()).Inc()
	}
}

// mergeHeaders applies the default Content-Type first, then overlays the
// caller's headers so caller values win on conflict.
//
// Accept-Encoding is dropped: a user-set value disables the transport's
// transparent gzip decompression, and validation reads the raw body, so a
// compressed backend response would reach the JSON parser undecoded.
// Leaving the header to the transport keeps the body plain.
func mergeHeaders(src http.Header) http.Header {
	dst := http.Header{}
	dst.Set("Content-Type", "application/json")
	for key, vals := range src {
		key = http.CanonicalHeaderKey(key)
		if key == "Accept-Encoding" {
			continue
		}
		dst[key] = vals
	}
	return dst
}

func contentTypeDetails(ct string) string {
	if ct == "" {
		return "unknown content type"
	}
	return ct
}

func connDetails(err error) string {
	if err == nil || err.Error() == "" {
		return "connection error"
	}
	return err.Error()
}
