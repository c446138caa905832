package cmd

import (
	"context"
	"fmt"

	"flat-monitor/core/config"
	"flat-monitor/core/database"
	"flat-monitor/core/logger"
	"flat-monitor/core/metrics"
	"flat-monitor/core/storage"
	"flat-monitor/feature/flats"
	"flat-monitor/feature/flats/archive"
	"flat-monitor/feature/flats/source"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds what every command needs: configuration, logger and the migrated store.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	repo    *flats.Repository
	storage storage.Client
	archive *archive.Archive
}

func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))

	repo := flats.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate flats table: %w", err)
	}

	rt := &runtime{cfg: cfg, log: l, db: db, repo: repo}

	// The archive is optional: without a storage endpoint snapshots are not kept.
	if cfg.Storage.Enabled() {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.storage = client
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			l.Warn("Snapshot archive unavailable", zap.Error(err))
		} else {
			rt.archive = archive.New(client, cfg.Storage.Bucket)
			l.Info("Snapshot archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}
	}

	return rt, nil
}

// service builds the reconciliation engine with the configured listing source.
func (rt *runtime) service(m *metrics.Metrics) *flats.Service {
	opts := []flats.Option{flats.WithMetrics(m)}
	if rt.archive != nil {
		opts = append(opts, flats.WithArchive(rt.archive))
	}
	client := source.NewClient(rt.cfg.Source, rt.log)
	return flats.NewService(rt.repo, client, rt.cfg.Monitor, rt.log, opts...)
}

func (rt *runtime) close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.log.Sync()
}
