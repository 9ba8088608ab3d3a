package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/avc-dev/apod-viewer/internal/config"
	"github.com/avc-dev/apod-viewer/internal/model"
)

// Верхняя граница диапазона идентификаторов. Диапазон достаточно велик,
// чтобы вероятность коллизии была пренебрежимой при ожидаемом числе
// записей; проверка уникальности перед вставкой закрывает остаток
const maxID = int64(1) << 53

// ShortLinkService содержит бизнес-логику создания коротких ссылок
type ShortLinkService struct {
	repo    URLRepository
	encoder *Encoder
	cfg     *config.Config
}

// NewShortLinkService создает новый экземпляр ShortLinkService
func NewShortLinkService(repo URLRepository, encoder *Encoder, cfg *config.Config) *ShortLinkService {
	return &ShortLinkService{
		repo:    repo,
		encoder: encoder,
		cfg:     cfg,
	}
}

// CreateShortLink генерирует свободный идентификатор, кодирует его в
// короткий код и сохраняет запись. Идентификатор выбирается случайно,
// чтобы коды нельзя было перебрать последовательно.
// Кодировщик инъективен, поэтому уникальный идентификатор гарантирует
// уникальный короткий URL
func (s *ShortLinkService) CreateShortLink(ctx context.Context, originalURL model.URL) (model.Code, error) {
	id, err := s.generateUniqueID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate unique id: %w", err)
	}

	code, err := s.encoder.Encode(id)
	if err != nil {
		return "", fmt.Errorf("failed to encode id: %w", err)
	}

	link := model.ShortLink{
		ID:          id,
		OriginalURL: originalURL,
		ShortURL:    s.cfg.BaseURL.String() + code,
	}

	if err := s.repo.CreateShortLink(ctx, link); err != nil {
		return "", fmt.Errorf("failed to save short link: %w", err)
	}

	return model.Code(code), nil
}

// generateUniqueID подбирает свободный идентификатор, проверяя каждый
// кандидат через IsIDFree
func (s *ShortLinkService) generateUniqueID(ctx context.Context) (int64, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		id := rand.Int63n(maxID-1) + 1

		free, err := s.repo.IsIDFree(ctx, id)
		if err != nil {
			return 0, err
		}
		if free {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate unique id after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
