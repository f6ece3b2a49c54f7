package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the item database answers a ping.
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(r.Context(), w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgDatabaseDown,
			})
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
