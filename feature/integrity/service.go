package integrity

import (
	"context"

	"flat-monitor/core/storage"
	"flat-monitor/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when no
// object storage is configured.
func NewService(db *gorm.DB, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// CheckSchema verifies the flats table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckArchive inspects the snapshot bucket.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	return checks.CheckArchive(ctx, s.client, s.bucket)
}

// FixArchive creates the snapshot bucket.
func (s *Service) FixArchive(ctx context.Context) error {
	return checks.FixArchive(ctx, s.client, s.bucket, s.region, s.logger)
}

// Report runs every check. Failing checks are reported, not returned.
func (s *Service) Report(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if schema, err := s.CheckSchema(); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if s.client == nil {
		report["archive"] = map[string]any{"status": "disabled"}
	} else if arch, err := s.CheckArchive(ctx); err != nil {
		report["archive"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["archive"] = arch
	}

	return report
}
