package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avc-dev/apod-viewer/internal/model"
)

// ShortLinkEntry - формат одной записи в JSON файле
type ShortLinkEntry struct {
	UUID        string `json:"uuid"`
	ID          int64  `json:"id"`
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// fileDocument - формат файла целиком: соль кодировщика и список записей
type fileDocument struct {
	Salt    string           `json:"salt"`
	Entries []ShortLinkEntry `json:"entries"`
}

// FileStorage управляет персистентным хранилищем коротких ссылок в JSON файле
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает соль и все записи из файла
func (fs *FileStorage) Load() (string, []ShortLinkEntry, error) {
	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return "", nil, nil
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return "", nil, nil
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return doc.Salt, doc.Entries, nil
}

// Save сохраняет соль и все записи в файл
func (fs *FileStorage) Save(salt string, entries []ShortLinkEntry) error {
	data, err := json.MarshalIndent(fileDocument{Salt: salt, Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// entryFromLink собирает запись файла из доменной модели
func entryFromLink(link model.ShortLink, uuid string) ShortLinkEntry {
	return ShortLinkEntry{
		UUID:        uuid,
		ID:          link.ID,
		OriginalURL: string(link.OriginalURL),
		ShortURL:    link.ShortURL,
	}
}
