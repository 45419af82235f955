package middleware

import (
	"log"
	"net/http"
)

// CORSDebugMiddleware logs origin and preflight details. Enabled via the
// CORS_DEBUG env var when diagnosing frontend access issues.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[CORS Debug] Request from Origin: %s", r.Header.Get("Origin"))
		log.Printf("[CORS Debug] Request Method: %s", r.Method)

		next.ServeHTTP(w, r)
	})
}
