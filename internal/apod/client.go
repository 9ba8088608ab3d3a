package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Регистрируем декодеры форматов, которые отдает NASA
	_ "image/jpeg" //
	_ "image/png"  //
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/config"
	"github.com/avc-dev/apod-viewer/internal/metrics"
)

// Заголовки NASA API со счетчиками лимита запросов
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// Порог остатка лимита, ниже которого пишется warning
const rateLimitWarnThreshold = 0.1

// Client - валидирующий клиент NASA APOD API.
// Все зависимости передаются явно при создании; глобального состояния нет,
// поэтому в тестах клиент собирается поверх httptest-сервера.
type Client struct {
	httpClient      *http.Client
	imageHTTPClient *http.Client
	apiURL          string
	apiKey          string
	logger          *zap.Logger
}

// NewClient создает клиент APOD API с таймаутами из конфигурации
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.APIRequestTimeout},
		imageHTTPClient: &http.Client{Timeout: cfg.ImageFetchTimeout},
		apiURL:          cfg.ApodAPIURL,
		apiKey:          cfg.NasaAPIKey,
		logger:          logger,
	}
}

// FetchOption добавляет необязательный параметр запроса
type FetchOption func(url.Values)

// WithConceptTags запрашивает у NASA API список тегов-концептов для снимка
func WithConceptTags() FetchOption {
	return func(v url.Values) {
		v.Set("concept_tags", "true")
	}
}

// apodResponse описывает распознаваемые поля ответа NASA API.
// Нераспознанные поля игнорируются при декодировании
type apodResponse struct {
	URL         string          `json:"url"`
	MediaURL    string          `json:"mediaUrl"`
	Title       string          `json:"title"`
	Explanation string          `json:"explanation"`
	Concepts    json.RawMessage `json:"concepts"`
	Error       json.RawMessage `json:"error"`
}

// Fetch запрашивает снимок дня за указанную дату.
// Пустая дата означает "последний снимок". Невалидная дата возвращает
// ErrValidation до какого-либо сетевого запроса.
func (c *Client) Fetch(ctx context.Context, date string, opts ...FetchOption) (*Item, error) {
	date, err := OptionalDate(date)
	if err != nil {
		metrics.ApodFetchesTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		return nil, err
	}

	item, err := c.fetch(ctx, date, opts)
	metrics.ApodFetchesTotal.WithLabelValues(outcomeLabel(err)).Inc()
	return item, err
}

func (c *Client) fetch(ctx context.Context, date string, opts []FetchOption) (*Item, error) {
	// Собираем запрос только из непустых параметров
	params := url.Values{}
	if date != "" {
		params.Set("date", date)
	}
	for _, opt := range opts {
		opt(params)
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build APOD request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read APOD response: %w", err)
	}

	var decoded apodResponse
	// Тело не-2xx ответов бывает и не-JSON, ошибку декодирования здесь
	// подавляем и классифицируем по статусу
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, upstreamMessage(decoded.Error, resp.Status))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode APOD response: %w", decodeErr)
	}
	if len(decoded.Error) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, upstreamMessage(decoded.Error, resp.Status))
	}

	c.reportRateLimit(resp.Header)

	return c.newItem(decoded), nil
}

// newItem копирует распознаваемые поля ответа в Item.
// Отсутствующие поля остаются нулевыми значениями, а не ошибкой
func (c *Client) newItem(resp apodResponse) *Item {
	mediaURL := resp.URL
	if mediaURL == "" {
		mediaURL = resp.MediaURL
	}

	item := &Item{
		MediaURL:    mediaURL,
		Title:       resp.Title,
		Explanation: resp.Explanation,
		Concepts:    flattenConcepts(resp.Concepts),
	}
	item.fetchImage = func(ctx context.Context) (image.Image, error) {
		return c.downloadImage(ctx, item.MediaURL)
	}
	return item
}

// downloadImage скачивает и декодирует изображение снимка
func (c *Client) downloadImage(ctx context.Context, mediaURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageFetch, err)
	}

	resp, err := c.imageHTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: image download", ErrTimeout)
		}
		return nil, fmt.Errorf("%w: %s", ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrImageFetch, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageFetch, err)
	}
	return img, nil
}

// reportRateLimit читает счетчики лимита из заголовков ответа и пишет
// warning, когда остаток опускается ниже 10%. Сигнал информационный
// и никогда не прерывает вызов; битые заголовки игнорируются
func (c *Client) reportRateLimit(header http.Header) {
	limit, err := strconv.Atoi(header.Get(headerRateLimitLimit))
	if err != nil || limit <= 0 {
		return
	}
	remaining, err := strconv.Atoi(header.Get(headerRateLimitRemaining))
	if err != nil {
		return
	}

	percent := float64(remaining) / float64(limit)
	if percent < rateLimitWarnThreshold {
		c.logger.Warn("NASA API rate limit is almost exhausted",
			zap.Float64("remaining_percent", percent*100),
			zap.Int("remaining", remaining),
			zap.Int("limit", limit),
		)
	}
}

// flattenConcepts приводит поле concepts к упорядоченному списку строк.
// NASA API отдает его либо массивом, либо объектом с числовыми ключами;
// объект разворачивается в значения, упорядоченные по ключу
func flattenConcepts(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		left, leftErr := strconv.Atoi(keys[i])
		right, rightErr := strconv.Atoi(keys[j])
		if leftErr == nil && rightErr == nil {
			return left < right
		}
		return keys[i] < keys[j]
	})

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, keyed[key])
	}
	return values
}

// upstreamMessage извлекает сообщение об ошибке из тела ответа NASA API.
// Поле error бывает и строкой, и объектом с полем message
func upstreamMessage(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil && text != "" {
		return text
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil && structured.Message != "" {
		return structured.Message
	}

	return fallback
}

// classifyNetworkError отделяет превышение таймаута от прочих сетевых ошибок
func classifyNetworkError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: APOD API call", ErrTimeout)
	}
	return fmt.Errorf("failed to call APOD API: %w", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrRateLimited):
		return metrics.OutcomeRateLimited
	case errors.Is(err, ErrTimeout):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeUpstream
	}
}
