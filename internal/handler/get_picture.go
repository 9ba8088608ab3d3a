package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/model"
)

// placeholderPicture отдается вместо снимка при любой ошибке клиента
// NASA API: пользователь получает заглушку, а не голую ошибку
var placeholderPicture = model.Picture{
	URL:   "/static/images/image_not_found.png",
	Title: "404 - Not Found",
	Explanation: "APOD was not delivered for this date, or is pending, " +
		"or encountering issues with the API or server. Kindly report this " +
		"error or choose an alternative date. The Astronomy Picture of the " +
		"Day (APOD) service commenced on June 16, 1995. The latest image " +
		"was delivered at midnight today (Eastern Time). Please select a " +
		"date within that timeframe.",
}

// GetPicture обрабатывает запрос снимка за дату из query-параметра date.
// Пустая дата означает последний снимок
func (h *Handler) GetPicture(w http.ResponseWriter, r *http.Request) {
	picture, err := h.pictures.GetPicture(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writePicture(w, http.StatusNotFound, placeholderPicture)
		return
	}

	h.writePicture(w, http.StatusOK, picture)
}

// GetDailyPicture обрабатывает запрос снимка главной страницы
func (h *Handler) GetDailyPicture(w http.ResponseWriter, r *http.Request) {
	picture, err := h.pictures.GetDailyPicture(r.Context())
	if err != nil {
		h.writePicture(w, http.StatusNotFound, placeholderPicture)
		return
	}

	h.writePicture(w, http.StatusOK, picture)
}

func (h *Handler) writePicture(w http.ResponseWriter, status int, picture model.Picture) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(picture); err != nil {
		h.logger.Error("failed to encode picture response", zap.Error(err))
	}
}
