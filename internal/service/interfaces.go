package service

import (
	"context"

	"github.com/avc-dev/apod-viewer/internal/model"
)

// URLRepository определяет методы хранилища, нужные сервису коротких ссылок
type URLRepository interface {
	// CreateShortLink сохраняет запись одной атомарной вставкой
	CreateShortLink(ctx context.Context, link model.ShortLink) error
	// IsIDFree проверяет, свободен ли числовой идентификатор
	IsIDFree(ctx context.Context, id int64) (bool, error)
}
