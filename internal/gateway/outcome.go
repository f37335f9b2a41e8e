package gateway

import (
	"encoding/json"
	"net/http"

	"jobdeck-gateway/internal/model"
)

// kind tags the possible results of a forward. Success carries the backend's
// own status code; each failure kind has exactly one fixed status and error
// label, defined once in outcomeTable so the mapping cannot drift between
// call sites.
type kind int

const (
	kindSuccess kind = iota
	kindNotConfigured
	kindNonJSON
	kindInvalidJSON
	kindConnFailed
)

// String returns the bounded metrics label for the outcome kind.
func (k kind) String() string {
	switch k {
	case kindSuccess:
		return "success"
	case kindNotConfigured:
		return "not_configured"
	case kindNonJSON:
		return "non_json"
	case kindInvalidJSON:
		return "invalid_json"
	case kindConnFailed:
		return "connection_failed"
	}
	return "unknown"
}

type outcomeSpec struct {
	status  int
	label   string
	message string
}

// outcomeTable maps each failure kind to its status code, machine-readable
// error label, and remediation message. Success is absent: it forwards the
// backend's status untouched, including backend 4xx/5xx. Callers rely on
// the fixed failure codes to tell gateway-level failures apart from
// backend-reported ones.
var outcomeTable = map[kind]outcomeSpec{
	kindNotConfigured: {
		status:  http.StatusServiceUnavailable,
		label:   "Backend not configured",
		message: "Set " + requiredConfigKey + " in the config file or pass --backend-address.",
	},
	kindNonJSON: {
		status:  http.StatusBadGateway,
		label:   "Backend returned non-JSON response",
		message: "The backend did not return JSON; check that " + requiredConfigKey + " points at the API server, not a web page.",
	},
	kindInvalidJSON: {
		status:  http.StatusBadGateway,
		label:   "Invalid JSON response from backend",
		message: "The backend returned a body that could not be parsed as JSON.",
	},
	kindConnFailed: {
		status:  http.StatusInternalServerError,
		label:   "Failed to connect to backend",
		message: "Ensure your backend server is running and the base address is configured correctly.",
	},
}

const (
	requiredConfigKey = "backend.base_address"
	exampleConfigVal  = "https://api.jobdeck.example.com"
)

// renderFailure converts a failure kind and optional diagnostic detail into
// the normalized error result. This is the only place failure envelopes are
// built.
func renderFailure(k kind, details string) *model.ProxyResult {
	spec := outcomeTable[k]

	body := model.ErrorBody{
		Success: false,
		Error:   spec.label,
		Message: spec.message,
		Details: details,
	}
	if k == kindNotConfigured {
		body.Config = &model.ConfigHint{
			Required: requiredConfigKey,
			Example:  exampleConfigVal,
		}
	}

	// ErrorBody marshals from plain strings and cannot fail.
	buf, _ := json.Marshal(body)

	return &model.ProxyResult{
		StatusCode: spec.status,
		Body:       buf,
	}
}
