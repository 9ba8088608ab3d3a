package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/apod-viewer/internal/apod"
	"github.com/avc-dev/apod-viewer/internal/config"
	"github.com/avc-dev/apod-viewer/internal/config/db"
	"github.com/avc-dev/apod-viewer/internal/handler"
	"github.com/avc-dev/apod-viewer/internal/migrations"
	"github.com/avc-dev/apod-viewer/internal/repository"
	"github.com/avc-dev/apod-viewer/internal/service"
	"github.com/avc-dev/apod-viewer/internal/store"
	"github.com/avc-dev/apod-viewer/internal/usecase"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*handler.Handler, db.Database, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	// Соль кодировщика читается из хранилища; свежесгенерированная
	// сохраняется только при самом первом старте. Благодаря этому
	// выданные коды продолжают резолвиться после перезапуска
	salt, err := repo.LoadOrCreateSalt(ctx, service.GenerateSalt(cfg.Shortener.SaltLength))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize encoder salt: %w", err)
	}

	encoder, err := service.NewEncoder(salt, cfg.Shortener.MinCodeLength)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize encoder: %w", err)
	}

	shortLinkService := service.NewShortLinkService(repo, encoder, cfg)
	apodClient := apod.NewClient(cfg, logger)
	uc := usecase.New(repo, shortLinkService, apodClient, cfg, logger)
	h := handler.New(uc, uc, logger, database)

	return h, database, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.Database.Enabled() {
		database, err := db.NewConfig(cfg.Database.DSN()).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// Схема создается идемпотентно на каждом старте
		migrator := migrations.NewMigrator(database.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage", zap.String("host", cfg.Database.Host))
		return store.NewDatabaseStore(database), database, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
