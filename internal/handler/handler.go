package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/config/db"
	"github.com/avc-dev/apod-viewer/internal/model"
)

// PictureUsecase определяет операции со снимками дня
type PictureUsecase interface {
	GetPicture(ctx context.Context, date string) (model.Picture, error)
	GetDailyPicture(ctx context.Context) (model.Picture, error)
}

// ShortenerUsecase определяет операции с короткими ссылками
type ShortenerUsecase interface {
	ShortenURL(ctx context.Context, urlString string) (string, error)
	ResolveShortURL(ctx context.Context, code string) (string, error)
}

// Handler - тонкий HTTP слой над usecase
type Handler struct {
	pictures  PictureUsecase
	shortener ShortenerUsecase
	logger    *zap.Logger
	db        db.Database
}

// New создает новый экземпляр Handler
func New(pictures PictureUsecase, shortener ShortenerUsecase, logger *zap.Logger, database db.Database) *Handler {
	return &Handler{
		pictures:  pictures,
		shortener: shortener,
		logger:    logger,
		db:        database,
	}
}
