package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// CORSDebugMiddleware logs the CORS-relevant parts of each request and its
// response headers at debug level.
func CORSDebugMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("cors request",
				zap.String("origin", r.Header.Get("Origin")),
				zap.String("method", r.Method),
				zap.Bool("preflight", r.Method == http.MethodOptions),
				zap.String("request_method", r.Header.Get("Access-Control-Request-Method")),
			)

			next.ServeHTTP(w, r)

			logger.Debug("cors response",
				zap.String("allow_origin", w.Header().Get("Access-Control-Allow-Origin")),
				zap.String("vary", w.Header().Get("Vary")),
			)
		})
	}
}
