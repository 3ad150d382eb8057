package middleware

import (
	"net/http"
	"time"

	"github.com/ashchan-dev/ashchan/internal/logger"
	"github.com/google/uuid"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request: request id, method, path, status, duration.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestId := uuid.NewString()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		ip, err := GetIP(r)
		if err != nil {
			ip = r.RemoteAddr
		}

		logger.Log.Info("request",
			"request_id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start).String(),
			"ip", ip,
		)
	})
}
