package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/logging"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/metrics"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logging tags every request with an ID, logs its outcome and feeds the
// request metrics.
func Logging(baseLogger *slog.Logger, recorder *metrics.Recorder) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()

		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header().Set("X-Request-ID", requestID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, requestID),
			slog.String(logging.FieldMethod, c.Request.Method),
			slog.String(logging.FieldPath, c.Request.URL.Path),
		)

		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), logger))

		ww := &statusWriter{ResponseWriter: c.Response, status: http.StatusOK}
		c.Response = ww

		c.Next()

		duration := time.Since(start)
		if recorder != nil {
			recorder.RecordHTTPRequest(c.Request.Method, normalizeRoute(c.Request.URL.Path), ww.status, duration)
		}

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	}
}

// normalizeRoute collapses numeric path segments so metric labels stay
// low-cardinality.
func normalizeRoute(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if isNumeric(segment) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
