package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать
	// свободный идентификатор после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for id generation")
)
