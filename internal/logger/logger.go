package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// InitLogger installs the process wide slog logger writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the process wide slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRequestID creates a new UUID for tracing requests and flushes.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GetRequestID returns the request ID or an empty string.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}
