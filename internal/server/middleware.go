package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// RequestLogger returns [Middleware] that logs every request's method,
// path, and handling duration at debug level.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		})
	}
}
