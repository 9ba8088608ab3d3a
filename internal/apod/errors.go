package apod

import "errors"

var (
	// ErrValidation возвращается при некорректных входных параметрах,
	// до выполнения какого-либо сетевого запроса
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited возвращается при HTTP 429 от NASA API.
	// Клиент не выполняет повторных попыток - это решение вызывающей стороны
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUpstream возвращается когда NASA API сообщил об ошибке:
	// не-2xx статус или поле error в теле ответа
	ErrUpstream = errors.New("upstream API error")

	// ErrImageFetch возвращается при неудачной загрузке или декодировании
	// изображения. Основные данные снимка при этом остаются пригодными
	ErrImageFetch = errors.New("image fetch failed")

	// ErrTimeout возвращается когда сетевая операция превысила лимит времени
	ErrTimeout = errors.New("request timed out")
)
