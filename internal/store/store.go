package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/apod-viewer/internal/model"
)

var (
	ErrNotFound      = errors.New("short link not found")
	ErrAlreadyExists = errors.New("short link already exists")
)

// Store - in-memory хранилище коротких ссылок.
// Используется в тестах и при запуске без базы данных; соль в этом
// варианте живет только в рамках процесса.
type Store struct {
	links map[string]model.ShortLink
	ids   map[int64]struct{}
	salt  string
	mutex sync.Mutex
}

func NewStore() *Store {
	return &Store{
		links: make(map[string]model.ShortLink),
		ids:   make(map[int64]struct{}),
	}
}

// CreateShortLink сохраняет запись. Ключом служит полный короткий URL
func (s *Store) CreateShortLink(_ context.Context, link model.ShortLink) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[link.ShortURL]; exists {
		return fmt.Errorf("short URL %s: %w", link.ShortURL, ErrAlreadyExists)
	}
	if _, exists := s.ids[link.ID]; exists {
		return fmt.Errorf("id %d: %w", link.ID, ErrAlreadyExists)
	}

	s.links[link.ShortURL] = link
	s.ids[link.ID] = struct{}{}

	return nil
}

// GetOriginalURL возвращает оригинальный URL по точному совпадению короткого
func (s *Store) GetOriginalURL(_ context.Context, shortURL string) (model.URL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[shortURL]
	if !ok {
		return "", fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
	}

	return link.OriginalURL, nil
}

// IsIDFree проверяет, свободен ли числовой идентификатор
func (s *Store) IsIDFree(_ context.Context, id int64) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.ids[id]
	return !exists, nil
}

// LoadOrCreateSalt возвращает сохраненную соль кодировщика.
// При первом вызове запоминает переданную; последующие вызовы возвращают
// ее же, так что соль стабильна в рамках жизни процесса
func (s *Store) LoadOrCreateSalt(_ context.Context, salt string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.salt == "" {
		s.salt = salt
	}
	return s.salt, nil
}

// InitializeWith инициализирует хранилище данными без проверок на
// существование. Используется для массовой загрузки, например из файла
func (s *Store) InitializeWith(links map[string]model.ShortLink, salt string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for shortURL, link := range links {
		s.links[shortURL] = link
		s.ids[link.ID] = struct{}{}
	}
	if salt != "" {
		s.salt = salt
	}
}

func (s *Store) Close() error {
	return nil
}
