package logging

import (
	"context"
	"log/slog"
	"os"
)

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldEndpoint   = "endpoint"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldUserID     = "user_id"
	FieldTeamID     = "team_id"
	FieldEntryID    = "entry_id"
)

const serviceName = "pokemon-frontend"

// New builds the process logger: JSON in production, text elsewhere.
func New(production bool) *slog.Logger {
	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler).With(slog.String(FieldService, serviceName))
}

type contextKey struct{}

// WithLogger stores a request-scoped logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the request-scoped logger, or the default logger when
// none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
