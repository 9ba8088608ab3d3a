package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/apod"
	"github.com/avc-dev/apod-viewer/internal/config"
	"github.com/avc-dev/apod-viewer/internal/model"
)

// URLRepository определяет интерфейс для чтения сохраненных коротких ссылок
type URLRepository interface {
	GetOriginalURL(ctx context.Context, shortURL string) (model.URL, error)
}

// ShortLinkService определяет интерфейс сервиса генерации коротких ссылок
type ShortLinkService interface {
	CreateShortLink(ctx context.Context, originalURL model.URL) (model.Code, error)
}

// PictureProvider определяет интерфейс клиента NASA APOD API
type PictureProvider interface {
	Fetch(ctx context.Context, date string, opts ...apod.FetchOption) (*apod.Item, error)
}

// Usecase связывает клиент APOD и сервис коротких ссылок с внешним слоем
type Usecase struct {
	repo     URLRepository
	service  ShortLinkService
	pictures PictureProvider
	cfg      *config.Config
	logger   *zap.Logger
}

// New создает новый экземпляр Usecase
func New(repo URLRepository, service ShortLinkService, pictures PictureProvider, cfg *config.Config, logger *zap.Logger) *Usecase {
	return &Usecase{
		repo:     repo,
		service:  service,
		pictures: pictures,
		cfg:      cfg,
		logger:   logger,
	}
}
