package model

// Picture представляет снимок дня в том виде, в котором его отдает API слой
type Picture struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Concepts    []string `json:"concepts,omitempty"`
	Date        string   `json:"date,omitempty"`
}
