package v1

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Count   *int                `json:"count,omitempty"`
	Error   string              `json:"error,omitempty"`
	Reason  string              `json:"reason,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeList[E any](w http.ResponseWriter, entries []E) {
	if entries == nil {
		entries = []E{}
	}
	n := len(entries)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: entries, Count: &n})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed",
			"status", status,
			"error", err)
	}

	writeJSON(w, status, Response{
		Success: false,
		Error:   errors.GetRootMessage(err),
		Reason:  string(reasonFor(err)),
		Errors:  errors.GetFieldErrors(err),
	})
}

// reasonFor names the failure kind, falling back to the kind implied by
// the code for errors raised without an explicit reason
func reasonFor(err error) errors.Reason {
	if reason := errors.GetReason(err); reason != errors.ReasonNone {
		return reason
	}
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return errors.ReasonNotFound
	case errors.CodeInvalidArgument:
		return errors.ReasonValidation
	case errors.CodeAlreadyExists:
		return errors.ReasonDuplicateKey
	default:
		return errors.ReasonNone
	}
}

// decodeJSON reads a required JSON body
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.InvalidArgument("request body is required")
		}
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

// decodeOptionalJSON reads a JSON body that may be absent
func decodeOptionalJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
