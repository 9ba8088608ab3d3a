package model

type Code string

type URL string

func (u URL) String() string {
	return string(u)
}

// ShortLink представляет сохраненную пару оригинальный/короткий URL.
// ID - числовой идентификатор, из которого кодируется короткий код.
// ShortURL хранится полностью (префикс + код) и уникален среди записей.
type ShortLink struct {
	ID          int64  `json:"id"`
	OriginalURL URL    `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// ShortenRequest представляет тело запроса на сокращение URL
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse представляет тело ответа с коротким URL
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}
