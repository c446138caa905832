package checks

import (
	"context"
	"fmt"
	"strings"

	"flat-monitor/core/storage"
	"flat-monitor/feature/flats/archive"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ArchiveReport is the result of an archive check.
type ArchiveReport struct {
	Bucket    string `json:"bucket"`
	Exists    bool   `json:"exists"`
	Snapshots int    `json:"snapshots"`
	Latest    string `json:"latest,omitempty"`
}

// CheckArchive reports whether the bucket exists and what it holds.
func CheckArchive(ctx context.Context, client storage.Client, bucket string) (*ArchiveReport, error) {
	if client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &ArchiveReport{Bucket: bucket, Exists: exists}
	if !exists {
		return report, nil
	}

	opts := minio.ListObjectsOptions{Prefix: archive.Prefix, Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		report.Snapshots++
		if obj.Key > report.Latest {
			report.Latest = obj.Key
		}
	}
	return report, nil
}

// FixArchive creates the bucket when it is missing.
func FixArchive(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("object storage is not configured")
	}
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Snapshot bucket ready", zap.String("bucket", bucket))
	return nil
}
