package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// flowState tracks progress through the OAuth callback flow. The flow is an
// explicit state machine so an unfinished transition is visible in the
// response instead of being faked as success.
type flowState int

const (
	stateCodeReceived flowState = iota
	stateTokenExchanged
	stateSessionEstablished
)

func (s flowState) String() string {
	switch s {
	case stateCodeReceived:
		return "code_received"
	case stateTokenExchanged:
		return "token_exchanged"
	case stateSessionEstablished:
		return "session_established"
	}
	return "unknown"
}

// errExchangeNotImplemented marks the stubbed code-for-token transition.
var errExchangeNotImplemented = errors.New("token exchange not implemented")

// OAuthHandler serves the OAuth callback. It does not call the gateway.
type OAuthHandler struct {
	logger *slog.Logger
}

// NewOAuthHandler creates an OAuthHandler.
func NewOAuthHandler(logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		logger: logger.With("component", "oauth_handler"),
	}
}

// Callback receives the provider redirect. A request without a code is a
// 400; with a code the flow advances to code_received and stops at the
// unimplemented exchange, reported as 501 with the state reached.
func (h *OAuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Missing authorization code",
			"message": "The OAuth provider did not supply a code query parameter.",
		})
	}

	state := stateCodeReceived

	if err := h.exchange(code); err != nil {
		h.logger.Warn("oauth flow stopped",
			"state", state.String(),
			"err", err,
		)
		return c.JSON(http.StatusNotImplemented, map[string]any{
			"success": false,
			"error":   "OAuth token exchange not implemented",
			"message": "The authorization code was received but cannot be exchanged for a token yet.",
			"state":   state.String(),
		})
	}

	// Unreachable until exchange is implemented; kept so the full flow is
	// written once and the stub is the only gap.
	state = stateSessionEstablished
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"state":   state.String(),
	})
}

// exchange would trade the authorization code for a token.
// TODO(jobdeck): implement against the identity provider's token endpoint
// once provider credentials are provisioned.
func (h *OAuthHandler) exchange(string) error {
	return errExchangeNotImplemented
}
