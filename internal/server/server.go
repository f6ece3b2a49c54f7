package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/handler"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// Server is the read-only item inspection API.
type Server struct {
	httpServer *http.Server
}

// NewServer wires the inspection routes and middleware stack.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, items handler.ItemLoader, templates repository.TemplateCatalog, prices handler.PriceQuoter) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(apiKey, trustedProxies, dbPool, items, templates, prices),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func newRouter(apiKey string, trustedProxies []string, dbPool database.Pool, items handler.ItemLoader, templates repository.TemplateCatalog, prices handler.PriceQuoter) http.Handler {
	r := chi.NewRouter()
	tracker := NewClientTracker(DefaultTrackingWindow, DefaultRequestLimit)

	// Outermost first
	r.Use(SecurityHeadersMiddleware)
	r.Use(AuthMiddleware(apiKey, trustedProxies, tracker))
	r.Use(RateLimitMiddleware(trustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	itemHandler := handler.NewItemHandler(items, templates, prices)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items/{guid}", itemHandler.HandleGetItem)
		r.Get("/templates/{id}/price", itemHandler.HandleGetTemplatePrice)
	})

	return r
}

// responseWriter captures the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags each API request with a request id and logs its
// start and completion. Probe and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for k := range out {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		}
	}
	return out
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a
// graceful stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
