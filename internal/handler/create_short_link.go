package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/model"
	"github.com/avc-dev/apod-viewer/internal/usecase"
)

// CreateShortLink обрабатывает запрос на создание короткой ссылки.
// Принимает JSON {"url": ...} и отвечает JSON {"short_url": ...}
func (h *Handler) CreateShortLink(w http.ResponseWriter, r *http.Request) {
	var req model.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shortURL, err := h.shortener.ShortenURL(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyURL) || errors.Is(err, usecase.ErrInvalidURL) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to shorten URL", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(model.ShortenResponse{ShortURL: shortURL}); err != nil {
		h.logger.Error("failed to encode shorten response", zap.Error(err))
	}
}
