package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"flat-monitor/core/storage"
	"flat-monitor/feature/flats/models"

	"github.com/minio/minio-go/v7"
)

// Prefix is the object key prefix of every snapshot.
const Prefix = "snapshots/"

// ErrNoSnapshots is returned by Latest when the archive is empty.
var ErrNoSnapshots = errors.New("no archived snapshots")

// Archive stores snapshots in one bucket.
type Archive struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// New creates an archive on an existing bucket.
func New(client storage.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket, now: time.Now}
}

// Save writes a snapshot and returns its object name.
func (a *Archive) Save(ctx context.Context, flats []models.Flat) (string, error) {
	if flats == nil {
		flats = []models.Flat{}
	}
	data, err := json.Marshal(flats)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := Prefix + a.now().UTC().Format(time.RFC3339) + ".json"
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return name, nil
}

// Load reads a snapshot. The name may omit the prefix and the .json suffix.
func (a *Archive) Load(ctx context.Context, name string) ([]models.Flat, error) {
	key := objectKey(name)

	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", key, err)
	}
	defer obj.Close()

	var flats []models.Flat
	if err := json.NewDecoder(obj).Decode(&flats); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return flats, nil
}

// List returns the names of all snapshots, oldest first.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			names = append(names, obj.Key)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Latest returns the name of the newest snapshot.
func (a *Archive) Latest(ctx context.Context) (string, error) {
	names, err := a.List(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoSnapshots
	}
	return names[len(names)-1], nil
}

// Prune removes all but the newest keep snapshots and returns how many were removed.
func (a *Archive) Prune(ctx context.Context, keep int) (int, error) {
	names, err := a.List(ctx)
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	if len(names) <= keep {
		return 0, nil
	}
	stale := names[:len(names)-keep]

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, name := range stale {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var errs []error
	for rErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("%s: %w", rErr.ObjectName, rErr.Err))
	}
	if len(errs) > 0 {
		return len(stale) - len(errs), fmt.Errorf("failed to remove snapshots: %w", errors.Join(errs...))
	}
	return len(stale), nil
}

func objectKey(name string) string {
	if !strings.HasPrefix(name, Prefix) {
		name = Prefix + name
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
