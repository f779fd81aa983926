package web

// errors.go provides unified error response handling for the web layer.
//
// All errors are logged with full technical details server-side and
// returned to clients as JSON with a stable code field. Structural
// validation failures (missing headers, empty files) carry their details
// in the response so clients can render them without parsing messages.

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"

	"github.com/sheetcheck/sheetcheck/internal/core"
	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Missing []string `json:"missingColumns,omitempty"`
}

// respondError maps an error to an HTTP status and JSON body, logging the
// technical detail with the request ID for correlation.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	resp := ErrorResponse{Error: err.Error(), Code: "internal_error"}

	var hm *validate.HeaderMismatchError
	switch {
	case errors.Is(err, validate.ErrNoData):
		statusCode = http.StatusUnprocessableEntity
		resp.Code = "no_data"
	case errors.As(err, &hm):
		statusCode = http.StatusUnprocessableEntity
		resp.Code = "header_mismatch"
		resp.Missing = hm.Missing
	case errors.Is(err, core.ErrTooManyRuns):
		statusCode = http.StatusTooManyRequests
		resp.Code = "too_many_runs"
	default:
		if statusCode == http.StatusBadRequest {
			resp.Code = "bad_request"
		} else if statusCode == http.StatusNotFound {
			resp.Code = "not_found"
		}
	}

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", resp.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
