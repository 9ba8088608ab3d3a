package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/model"
	"github.com/avc-dev/apod-viewer/internal/usecase"
)

// mockPictureUsecase - мок операций со снимками дня
type mockPictureUsecase struct {
	getPictureFunc      func(ctx context.Context, date string) (model.Picture, error)
	getDailyPictureFunc func(ctx context.Context) (model.Picture, error)
}

func (m *mockPictureUsecase) GetPicture(ctx context.Context, date string) (model.Picture, error) {
	return m.getPictureFunc(ctx, date)
}

func (m *mockPictureUsecase) GetDailyPicture(ctx context.Context) (model.Picture, error) {
	return m.getDailyPictureFunc(ctx)
}

// mockShortenerUsecase - мок операций с короткими ссылками
type mockShortenerUsecase struct {
	shortenURLFunc      func(ctx context.Context, urlString string) (string, error)
	resolveShortURLFunc func(ctx context.Context, code string) (string, error)
}

func (m *mockShortenerUsecase) ShortenURL(ctx context.Context, urlString string) (string, error) {
	return m.shortenURLFunc(ctx, urlString)
}

func (m *mockShortenerUsecase) ResolveShortURL(ctx context.Context, code string) (string, error) {
	return m.resolveShortURLFunc(ctx, code)
}

// routeWithCode добавляет в запрос chi-контекст с параметром code
func routeWithCode(r *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestGetPicture проверяет выдачу снимка и заглушку при ошибке клиента
func TestGetPicture(t *testing.T) {
	tests := []struct {
		name       string
		pictures   *mockPictureUsecase
		wantStatus int
		wantTitle  string
	}{
		{
			name: "Picture is returned as JSON",
			pictures: &mockPictureUsecase{
				getPictureFunc: func(ctx context.Context, date string) (model.Picture, error) {
					return model.Picture{
						URL:   "https://example.com/nebula.jpg",
						Title: "Nebula",
						Date:  date,
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantTitle:  "Nebula",
		},
		{
			name: "Placeholder on upstream failure",
			pictures: &mockPictureUsecase{
				getPictureFunc: func(ctx context.Context, date string) (model.Picture, error) {
					return model.Picture{}, errors.New("upstream is down")
				},
			},
			wantStatus: http.StatusNotFound,
			wantTitle:  "404 - Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(tt.pictures, nil, zap.NewNop(), nil)

			request := httptest.NewRequest(http.MethodGet, "/api/apod?date=2024-01-09", nil)
			recorder := httptest.NewRecorder()

			// Act
			h.GetPicture(recorder, request)

			// Assert
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var picture model.Picture
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &picture))
			assert.Equal(t, tt.wantTitle, picture.Title)
		})
	}
}

// TestGetPicture_PassesDate проверяет проброс query-параметра date
func TestGetPicture_PassesDate(t *testing.T) {
	// Arrange
	var gotDate string
	pictures := &mockPictureUsecase{
		getPictureFunc: func(ctx context.Context, date string) (model.Picture, error) {
			gotDate = date
			return model.Picture{}, nil
		},
	}
	h := New(pictures, nil, zap.NewNop(), nil)

	request := httptest.NewRequest(http.MethodGet, "/api/apod?date=2024-01-09", nil)
	recorder := httptest.NewRecorder()

	// Act
	h.GetPicture(recorder, request)

	// Assert
	assert.Equal(t, "2024-01-09", gotDate)
}

// TestGetDailyPicture проверяет выдачу снимка главной страницы
func TestGetDailyPicture(t *testing.T) {
	// Arrange
	pictures := &mockPictureUsecase{
		getDailyPictureFunc: func(ctx context.Context) (model.Picture, error) {
			return model.Picture{Title: "Today"}, nil
		},
	}
	h := New(pictures, nil, zap.NewNop(), nil)

	request := httptest.NewRequest(http.MethodGet, "/api/apod/today", nil)
	recorder := httptest.NewRecorder()

	// Act
	h.GetDailyPicture(recorder, request)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)

	var picture model.Picture
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &picture))
	assert.Equal(t, "Today", picture.Title)
}

// TestCreateShortLink проверяет статусы и тело ответа создания ссылки
func TestCreateShortLink(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		shortener    *mockShortenerUsecase
		wantStatus   int
		wantShortURL string
	}{
		{
			name: "Valid request",
			body: `{"url": "https://example.com/page"}`,
			shortener: &mockShortenerUsecase{
				shortenURLFunc: func(ctx context.Context, urlString string) (string, error) {
					assert.Equal(t, "https://example.com/page", urlString)
					return "http://localhost:8000/abcd", nil
				},
			},
			wantStatus:   http.StatusCreated,
			wantShortURL: "http://localhost:8000/abcd",
		},
		{
			name:       "Malformed JSON",
			body:       `{"url": `,
			shortener:  &mockShortenerUsecase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Empty URL",
			body: `{"url": ""}`,
			shortener: &mockShortenerUsecase{
				shortenURLFunc: func(ctx context.Context, urlString string) (string, error) {
					return "", usecase.ErrEmptyURL
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid URL",
			body: `{"url": "not a url"}`,
			shortener: &mockShortenerUsecase{
				shortenURLFunc: func(ctx context.Context, urlString string) (string, error) {
					return "", usecase.ErrInvalidURL
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"url": "https://example.com"}`,
			shortener: &mockShortenerUsecase{
				shortenURLFunc: func(ctx context.Context, urlString string) (string, error) {
					return "", usecase.ErrServiceUnavailable
				},
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(nil, tt.shortener, zap.NewNop(), nil)

			request := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			// Act
			h.CreateShortLink(recorder, request)

			// Assert
			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantShortURL != "" {
				var resp model.ShortenResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantShortURL, resp.ShortURL)
			}
		})
	}
}

// TestRedirect проверяет перенаправление и коды ошибок резолва
func TestRedirect(t *testing.T) {
	tests := []struct {
		name         string
		shortener    *mockShortenerUsecase
		wantStatus   int
		wantLocation string
	}{
		{
			name: "Known code redirects",
			shortener: &mockShortenerUsecase{
				resolveShortURLFunc: func(ctx context.Context, code string) (string, error) {
					assert.Equal(t, "abcd", code)
					return "https://example.com/page", nil
				},
			},
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "https://example.com/page",
		},
		{
			name: "Unknown code is 404",
			shortener: &mockShortenerUsecase{
				resolveShortURLFunc: func(ctx context.Context, code string) (string, error) {
					return "", usecase.ErrURLNotFound
				},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Storage failure is 500",
			shortener: &mockShortenerUsecase{
				resolveShortURLFunc: func(ctx context.Context, code string) (string, error) {
					return "", usecase.ErrServiceUnavailable
				},
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(nil, tt.shortener, zap.NewNop(), nil)

			request := routeWithCode(httptest.NewRequest(http.MethodGet, "/abcd", nil), "abcd")
			recorder := httptest.NewRecorder()

			// Act
			h.Redirect(recorder, request)

			// Assert
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))
		})
	}
}

// TestPing проверяет ответ healthcheck без настроенной базы данных
func TestPing(t *testing.T) {
	// Arrange
	h := New(nil, nil, zap.NewNop(), nil)

	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()

	// Act
	h.Ping(recorder, request)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
