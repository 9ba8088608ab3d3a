package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/apod-viewer/internal/model"
)

// Store определяет методы бэкенда хранилища коротких ссылок
type Store interface {
	CreateShortLink(ctx context.Context, link model.ShortLink) error
	GetOriginalURL(ctx context.Context, shortURL string) (model.URL, error)
	IsIDFree(ctx context.Context, id int64) (bool, error)
	LoadOrCreateSalt(ctx context.Context, salt string) (string, error)
	Close() error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) CreateShortLink(ctx context.Context, link model.ShortLink) error {
	if err := r.underlying.CreateShortLink(ctx, link); err != nil {
		return fmt.Errorf("failed to create short link: %w", err)
	}
	return nil
}

func (r *Repository) GetOriginalURL(ctx context.Context, shortURL string) (model.URL, error) {
	url, err := r.underlying.GetOriginalURL(ctx, shortURL)
	if err != nil {
		return "", fmt.Errorf("failed to get original URL: %w", err)
	}
	return url, nil
}

func (r *Repository) IsIDFree(ctx context.Context, id int64) (bool, error) {
	free, err := r.underlying.IsIDFree(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check id: %w", err)
	}
	return free, nil
}

func (r *Repository) LoadOrCreateSalt(ctx context.Context, salt string) (string, error) {
	stored, err := r.underlying.LoadOrCreateSalt(ctx, salt)
	if err != nil {
		return "", fmt.Errorf("failed to load or create salt: %w", err)
	}
	return stored, nil
}

func (r *Repository) Close() error {
	return r.underlying.Close()
}
