package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/handler"
	"github.com/avc-dev/apod-viewer/internal/metrics"
	"github.com/avc-dev/apod-viewer/internal/middleware"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	metrics.Init()

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))
	r.Use(middleware.Metrics)

	// Служебные маршруты
	r.Get("/ping", h.Ping)
	r.Method("GET", "/metrics", promhttp.Handler())

	// Снимок дня
	r.Get("/api/apod", h.GetPicture)
	r.Get("/api/apod/today", h.GetDailyPicture)

	// Короткие ссылки
	r.Post("/api/shorten", h.CreateShortLink)
	r.Get("/{code}", h.Redirect)

	return r
}
