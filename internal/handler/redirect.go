package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/usecase"
)

// Redirect обрабатывает входящий короткий код и перенаправляет на
// оригинальный URL. Неизвестный код - это 404, а не ошибка сервера
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	originalURL, err := h.shortener.ResolveShortURL(r.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrURLNotFound) {
			http.Error(w, "URL not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to resolve short URL", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, originalURL, http.StatusTemporaryRedirect)
}
