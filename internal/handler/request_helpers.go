package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ItemForge_Go/internal/logger"
)

// parseUintParam reads a numeric chi route parameter. On failure a 400 with
// message has already been written and ok is false.
func parseUintParam(w http.ResponseWriter, r *http.Request, name string, bits int, message string) (uint64, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil || v == 0 {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidPathParam, "param", name, "value", raw)
		respondError(r.Context(), w, http.StatusBadRequest, message)
		return 0, false
	}
	return v, true
}

// parseOptionalUintQuery reads an optional numeric query parameter, returning
// 0 when it is absent.
func parseOptionalUintQuery(r *http.Request, name string, bits int) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, bits)
}

// validateRequest checks a parsed request struct, writing the
// field errors on failure.
func validateRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := GetValidator().ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgValidationFailed, "error", err)
		respondJSON(r.Context(), w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}
