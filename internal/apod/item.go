package apod

import (
	"context"
	"image"
	"sync"
)

// Item представляет один опубликованный снимок дня.
// После конструирования поля неизменяемы; единственное исключение -
// мемоизированное изображение, которое загружается при первом обращении.
// Объект живет в рамках одного запроса и не сохраняется.
type Item struct {
	MediaURL    string
	Title       string
	Explanation string
	Concepts    []string

	fetchImage func(ctx context.Context) (image.Image, error)
	imageOnce  sync.Once
	image      image.Image
	imageErr   error
}

// Image синхронно загружает и декодирует изображение по MediaURL.
// Загрузка выполняется не более одного раза за время жизни объекта,
// результат (в том числе ошибка) кэшируется. Неудача здесь не влияет
// на уже полученные данные снимка и возвращается как ErrImageFetch
// или ErrTimeout.
func (i *Item) Image(ctx context.Context) (image.Image, error) {
	i.imageOnce.Do(func() {
		i.image, i.imageErr = i.fetchImage(ctx)
	})
	return i.image, i.imageErr
}
