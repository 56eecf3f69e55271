// Package handler contains the HTTP layer: decode the request, call the
// service, encode the response. No business rules live here.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/apperror"
)

// MessageResponse is the uniform body for errors and confirmations.
// Every non-entity response in the API is {"message": "..."} — the admin
// SPA relies on that shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends data with the given status. Headers and status must go
// out before the first body byte, hence the ordering here.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent; nothing to do but log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// writeError maps a service error to an HTTP response via the apperror
// taxonomy. Unique-constraint conflicts answer 400 like any other bad
// write. Unknown errors answer a generic 500 — internal error strings are
// logged, never sent to clients.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
		}

		writeMessage(w, status, appErr.Message)
		return
	}

	slog.Error("unhandled error", slog.String("error", err.Error()))
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON parses a request body into dst, answering 400 itself on
// malformed input. Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
