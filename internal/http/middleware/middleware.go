// Package middleware wraps gateway handlers with request IDs, access logs and metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/http/requestutil"
	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// LoggingMiddleware assigns a request ID, stores a request-scoped logger in the context,
// and emits one access line and one metric sample per request. Server errors log at warn.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestIDHeader))
		w.Header().Set(requestIDHeader, reqID)

		attrs := []any{
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		}
		if r.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", r.URL.RawQuery))
		}
		logger := baseLogger.With(attrs...)

		ctx := withRequestID(logging.WithLogger(r.Context(), logger), reqID)
		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r.WithContext(ctx))

		status := rw.statusCode()
		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), status, elapsed)

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "request complete",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Int("bytes", rw.written),
		)
	})
}

// responseWriter records the status and body size written by the wrapped handler.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

type requestIDKey struct{}

// RequestIDFromContext returns the ID assigned by LoggingMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// routeRoots are the first path segments the gateway serves.
var routeRoots = map[string]bool{
	"health":    true,
	"teams":     true,
	"players":   true,
	"games":     true,
	"schedule":  true,
	"standings": true,
	"coaches":   true,
	"rankings":  true,
	"leaders":   true,
}

// normalizePath turns a request path into a bounded metric label: identifiers under
// /teams, /players and /games become placeholders and unknown roots become /other.
func normalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if !routeRoots[parts[0]] {
		return "/other"
	}
	if len(parts) == 3 && parts[0] != "health" {
		if parts[0] == "teams" && parts[2] == "logo" {
			parts[1] = ":abbr"
		} else {
			parts[1] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
