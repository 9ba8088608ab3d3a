package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	return buf.Bytes()
}

// TestGzipMiddleware_CompressesResponse проверяет сжатие JSON ответа
// для клиента с Accept-Encoding: gzip
func TestGzipMiddleware_CompressesResponse(t *testing.T) {
	// Arrange
	payload := `{"title": "Nebula"}`
	handler := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/apod", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(recorder.Body)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(decompressed))
}

// TestGzipMiddleware_SkipsClientsWithoutGzip проверяет, что без
// Accept-Encoding ответ отдается как есть
func TestGzipMiddleware_SkipsClientsWithoutGzip(t *testing.T) {
	// Arrange
	payload := `{"title": "Nebula"}`
	handler := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/apod", nil)
	recorder := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(recorder, request)

	// Assert
	assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, recorder.Body.String())
}

// TestGzipMiddleware_SkipsNonCompressibleTypes проверяет, что бинарный
// контент не сжимается
func TestGzipMiddleware_SkipsNonCompressibleTypes(t *testing.T) {
	// Arrange
	handler := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))

	request := httptest.NewRequest(http.MethodGet, "/image", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(recorder, request)

	// Assert
	assert.Empty(t, recorder.Header().Get("Content-Encoding"))
}

// TestGzipMiddleware_DecompressesRequest проверяет распаковку сжатого
// тела входящего запроса
func TestGzipMiddleware_DecompressesRequest(t *testing.T) {
	// Arrange
	payload := `{"url": "https://example.com"}`

	var gotBody string
	handler := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
	}))

	request := httptest.NewRequest(http.MethodPost, "/api/shorten", bytes.NewReader(gzipBytes(t, payload)))
	request.Header.Set("Content-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, payload, gotBody)
}

// TestGzipMiddleware_RejectsBrokenGzip проверяет 400 на битом сжатом теле
func TestGzipMiddleware_RejectsBrokenGzip(t *testing.T) {
	// Arrange
	handler := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	request := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader("not gzip at all"))
	request.Header.Set("Content-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
