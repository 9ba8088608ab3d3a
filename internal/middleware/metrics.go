package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avc-dev/apod-viewer/internal/metrics"
)

// Metrics собирает счетчики и длительности HTTP запросов.
// В качестве метки route используется шаблон маршрута chi, а не реальный
// путь: реальные пути с кодами ссылок дали бы неограниченное число меток
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := newResponseWriter(w)

		next.ServeHTTP(wrapped, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, route, strconv.Itoa(wrapped.statusCode),
		).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(
			r.Method, route,
		).Observe(time.Since(start).Seconds())
	})
}
