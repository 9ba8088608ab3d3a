package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/avc-dev/apod-viewer/internal/model"
)

// FileStore - декоратор над Store, который добавляет персистентность
// через файл. Соль кодировщика сохраняется вместе с записями, поэтому
// выданные коды продолжают резолвиться после перезапуска процесса.
// Мьютекс внутреннего Store не покрывает декоратор, поэтому entries,
// salt и запись файла защищены собственным мьютексом.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	entries     []ShortLinkEntry
	salt        string
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	salt, entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	links := make(map[string]model.ShortLink, len(entries))
	for _, entry := range entries {
		links[entry.ShortURL] = model.ShortLink{
			ID:          entry.ID,
			OriginalURL: model.URL(entry.OriginalURL),
			ShortURL:    entry.ShortURL,
		}
	}

	fs.store.InitializeWith(links, salt)
	fs.entries = entries
	fs.salt = salt

	return nil
}

// CreateShortLink записывает ссылку в in-memory store и сохраняет файл
func (fs *FileStore) CreateShortLink(ctx context.Context, link model.ShortLink) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.store.CreateShortLink(ctx, link); err != nil {
		return err
	}

	fs.entries = append(fs.entries, entryFromLink(link, uuid.New().String()))
	if err := fs.fileStorage.Save(fs.salt, fs.entries); err != nil {
		return fmt.Errorf("failed to persist short link: %w", err)
	}

	return nil
}

// GetOriginalURL читает оригинальный URL из in-memory store
func (fs *FileStore) GetOriginalURL(ctx context.Context, shortURL string) (model.URL, error) {
	return fs.store.GetOriginalURL(ctx, shortURL)
}

// IsIDFree проверяет, свободен ли числовой идентификатор
func (fs *FileStore) IsIDFree(ctx context.Context, id int64) (bool, error) {
	return fs.store.IsIDFree(ctx, id)
}

// LoadOrCreateSalt возвращает соль из файла, а при ее отсутствии
// сохраняет переданную
func (fs *FileStore) LoadOrCreateSalt(ctx context.Context, salt string) (string, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.salt != "" {
		return fs.salt, nil
	}

	stored, err := fs.store.LoadOrCreateSalt(ctx, salt)
	if err != nil {
		return "", err
	}

	fs.salt = stored
	if err := fs.fileStorage.Save(fs.salt, fs.entries); err != nil {
		return "", fmt.Errorf("failed to persist salt: %w", err)
	}

	return fs.salt, nil
}

func (fs *FileStore) Close() error {
	return nil
}
