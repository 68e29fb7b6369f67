package middleware

import (
	"log/slog"
	"net/http"

	"github.com/postcraft/postcraft-api/internal/api/shared"
)

// TraceMiddleware stamps every request with a trace ID before any other
// handler runs, so downstream logs and error responses can be correlated.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
