package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/config"
	"github.com/avc-dev/apod-viewer/internal/config/db"
	"github.com/avc-dev/apod-viewer/internal/handler"
)

// App представляет приложение APOD viewer
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	database db.Database
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	h, database, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  h,
		database: database,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New(context.Background())
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	if app.database != nil {
		defer app.database.Close()
	}

	return app.start()
}
