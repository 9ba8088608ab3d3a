package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/store"
)

// ResolveShortURL возвращает оригинальный URL по входящему короткому коду.
// Код достраивается до полного короткого URL и ищется по точному
// совпадению. Неизвестный код - ожидаемый исход, а не сбой системы:
// внешний слой отвечает на него "not found", никогда не 500
func (u *Usecase) ResolveShortURL(ctx context.Context, code string) (string, error) {
	shortURL := u.shortURLFor(code)

	originalURL, err := u.repo.GetOriginalURL(ctx, shortURL)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrURLNotFound, code)
		}
		u.logger.Error("failed to resolve short URL",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return originalURL.String(), nil
}
