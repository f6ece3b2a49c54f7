package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per field validation failures
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	log := logger.FromContext(ctx)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		log.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	respondJSON(ctx, w, status, ErrorResponse{Error: message})
}

// mapServiceError converts a gateway or domain error to a status code and a
// message safe to show to API clients.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, ErrMsgTemplateNotFound
	case errors.Is(err, domain.ErrInvalidGUID), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	default:
		return http.StatusInternalServerError, ErrMsgGenericServer
	}
}
