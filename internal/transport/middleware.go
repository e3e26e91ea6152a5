package transport

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/workforce/internal/metrics"
)

// routePattern returns the matched chi pattern, or "unmatched" for requests
// that hit the not-found handler. Keeps metric label cardinality bounded.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// statusOf reports 200 for handlers that never wrote a header.
func statusOf(ww chimw.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			requestID, _ := RequestIDFromContext(r.Context())
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusOf(ww),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", requestID,
			)
		})
	}
}

// MetricsMiddleware records request counts and latency by route pattern.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			m.ObserveRequest(r.Method, routePattern(r), statusOf(ww), time.Since(start))
		})
	}
}

// RecoverMiddleware turns a handler panic into the generic 500 envelope.
func RecoverMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := RequestIDFromContext(r.Context())
				logger.Error("panic in handler",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", requestID,
					"stack", string(debug.Stack()),
				)
				WriteError(w, http.StatusInternalServerError, msgInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
