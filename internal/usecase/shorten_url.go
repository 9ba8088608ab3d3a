package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/metrics"
	"github.com/avc-dev/apod-viewer/internal/model"
)

// Предел длины оригинального URL, совпадает с ограничением колонки в БД
const maxOriginalURLLength = 2048

// ShortenURL создает короткий URL из строки оригинального URL.
// Выполняет валидацию, очистку URL и генерацию короткого кода
func (u *Usecase) ShortenURL(ctx context.Context, urlString string) (string, error) {
	urlString = strings.TrimSpace(urlString)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return "", ErrEmptyURL
	}
	if len(urlString) > maxOriginalURLLength {
		return "", fmt.Errorf("%w: exceeds %d characters", ErrInvalidURL, maxOriginalURLLength)
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", ErrInvalidURL
	}

	code, err := u.service.CreateShortLink(ctx, model.URL(urlString))
	if err != nil {
		u.logger.Error("failed to create short link",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	metrics.ShortLinksCreatedTotal.Inc()

	return u.shortURLFor(string(code)), nil
}

// shortURLFor собирает полный короткий URL из кода.
// Конкатенация с нормализованным префиксом используется и при сохранении,
// и при резолве - строки обязаны совпадать байт в байт
func (u *Usecase) shortURLFor(code string) string {
	return u.cfg.BaseURL.String() + code
}
