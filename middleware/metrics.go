package middleware

import (
	"net/http"
	"time"

	"vanachitra/metrics"
)

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrw, r)

		metrics.RequestsTotal.WithLabelValues(r.URL.Path).Inc()
		metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		if wrw.status >= 500 {
			metrics.ErrorsTotal.WithLabelValues(r.URL.Path).Inc()
		}
	})
}
