package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avc-dev/apod-viewer/internal/config/db"
	"github.com/avc-dev/apod-viewer/internal/model"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// DatabaseStore реализует хранилище коротких ссылок поверх PostgreSQL.
// Каждая операция - один атомарный statement; запись видна последующим
// чтениям сразу после подтверждения вставки.
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

// CreateShortLink вставляет запись одним statement
func (ds *DatabaseStore) CreateShortLink(ctx context.Context, link model.ShortLink) error {
	query := `
		INSERT INTO urls (id, original_url, short_url)
		VALUES ($1, $2, $3)
	`

	_, err := ds.pool.Exec(ctx, query, link.ID, string(link.OriginalURL), link.ShortURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("short URL %s: %w", link.ShortURL, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert into database: %w", err)
	}

	return nil
}

// GetOriginalURL ищет запись по точному совпадению короткого URL
func (ds *DatabaseStore) GetOriginalURL(ctx context.Context, shortURL string) (model.URL, error) {
	var originalURL string

	query := `
		SELECT original_url
		FROM urls
		WHERE short_url = $1
	`

	err := ds.pool.QueryRow(ctx, query, shortURL).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read from database: %w", err)
	}

	return model.URL(originalURL), nil
}

// IsIDFree проверяет, свободен ли числовой идентификатор
func (ds *DatabaseStore) IsIDFree(ctx context.Context, id int64) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM urls WHERE id = $1)
	`

	err := ds.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check id existence: %w", err)
	}

	return !exists, nil
}

// LoadOrCreateSalt возвращает соль кодировщика из базы.
// Переданная соль сохраняется только если записи еще нет; конкурентный
// старт нескольких процессов разрешается через ON CONFLICT DO NOTHING,
// так что все процессы видят одну и ту же соль
func (ds *DatabaseStore) LoadOrCreateSalt(ctx context.Context, salt string) (string, error) {
	insert := `
		INSERT INTO shortener_settings (id, salt)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := ds.pool.Exec(ctx, insert, salt); err != nil {
		return "", fmt.Errorf("failed to store encoder salt: %w", err)
	}

	var stored string
	if err := ds.pool.QueryRow(ctx, `SELECT salt FROM shortener_settings WHERE id = 1`).Scan(&stored); err != nil {
		return "", fmt.Errorf("failed to load encoder salt: %w", err)
	}

	return stored, nil
}

// Close ничего не делает: пул соединений закрывается на уровне приложения
func (ds *DatabaseStore) Close() error {
	return nil
}
