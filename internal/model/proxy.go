// Package model defines shared types for the gateway.
package model

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ProxyRequest describes one request to forward to the backend.
// Endpoint is a path fragment starting with "/"; everything else is
// an optional override.
type ProxyRequest struct {
	Ctx      context.Context
	Endpoint string
	Method   string // defaults to GET
	Query    url.Values
	Header   http.Header
	Body     io.Reader
}

// ProxyResult is the normalized outcome of a forward. Body is always
// valid JSON and is served with Content-Type: application/json, whether
// the forward succeeded or failed.
type ProxyResult struct {
	StatusCode int
	Body       []byte
}

// ErrorBody is the wire format for every gateway-level failure.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details string      `json:"details,omitempty"`
	Config  *ConfigHint `json:"config,omitempty"`
}

// ConfigHint names a missing configuration key and an example value.
type ConfigHint struct {
	Required string `json:"required"`
	Example  string `json:"example"`
}
