package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

// withLogging writes one access log entry per request once the handler
// returns. Event streams are therefore logged when the client goes away.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		entry := accessLogEvent(logger.FromRequest(r), rw.status)
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			entry = entry.Str("route", rctx.RoutePattern())
		}

		entry.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	if status >= http.StatusInternalServerError {
		return log.Warn()
	}
	return log.Info()
}
