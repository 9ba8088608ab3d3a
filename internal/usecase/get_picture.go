package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/apod"
	"github.com/avc-dev/apod-viewer/internal/model"
)

const dateLayout = "2006-01-02"

// GetPicture запрашивает снимок дня за указанную дату.
// Пустая дата означает "последний доступный снимок"
func (u *Usecase) GetPicture(ctx context.Context, date string) (model.Picture, error) {
	item, err := u.pictures.Fetch(ctx, date)
	if err != nil {
		u.logger.Warn("failed to fetch picture",
			zap.String("date", date),
			zap.Error(err),
		)
		return model.Picture{}, err
	}

	return pictureFromItem(item, date), nil
}

// GetDailyPicture возвращает снимок за сегодня по восточному времени США -
// NASA публикует новый снимок в полночь Eastern. Если сегодняшний еще
// не опубликован, возвращается вчерашний
func (u *Usecase) GetDailyPicture(ctx context.Context) (model.Picture, error) {
	now := easternNow()

	today := now.Format(dateLayout)
	picture, err := u.GetPicture(ctx, today)
	if err == nil {
		return picture, nil
	}
	u.logger.Warn("failed to fetch picture for today, falling back to yesterday",
		zap.String("date", today),
		zap.Error(err),
	)

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	return u.GetPicture(ctx, yesterday)
}

func pictureFromItem(item *apod.Item, date string) model.Picture {
	return model.Picture{
		URL:         item.MediaURL,
		Title:       item.Title,
		Explanation: item.Explanation,
		Concepts:    item.Concepts,
		Date:        date,
	}
}

func easternNow() time.Time {
	loc, err := time.LoadLocation("US/Eastern")
	if err != nil {
		// без базы таймзон считаем по UTC
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}
