package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var once sync.Once

var (
	// HTTPRequestsTotal - счетчик обработанных HTTP запросов.
	// route - шаблон маршрута chi, а не реальный путь, чтобы не плодить метки
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds - распределение длительности запросов
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distributions.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ApodFetchesTotal - счетчик обращений к NASA API с классификацией исхода
	ApodFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apod_fetches_total",
			Help: "Total number of APOD API calls by outcome.",
		},
		[]string{"outcome"},
	)

	// ShortLinksCreatedTotal - счетчик созданных коротких ссылок
	ShortLinksCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "short_links_created_total",
			Help: "Total number of short links created.",
		},
	)
)

// Возможные значения метки outcome для ApodFetchesTotal
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation_error"
	OutcomeRateLimited = "rate_limited"
	OutcomeUpstream    = "upstream_error"
	OutcomeTimeout     = "timeout"
)

// Init регистрирует метрики. Повторная регистрация в prometheus
// вызывает panic, поэтому регистрируем строго один раз.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			ApodFetchesTotal,
			ShortLinksCreatedTotal,
		)
	})
}
