package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"flat-monitor/core/storage/mocks"
	"flat-monitor/feature/flats/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	m := new(mocks.Client)
	a := New(m, "snaps")
	a.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	var uploaded []byte
	m.On("PutObject", mock.Anything, "snaps", "snapshots/2025-03-01T12:00:00Z.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	name, err := a.Save(context.Background(), []models.Flat{{ID: 1, Rooms: "0", Price: 100, Status: "free"}})
	require.NoError(t, err)
	assert.Equal(t, "snapshots/2025-03-01T12:00:00Z.json", name)

	var decoded []models.Flat
	require.NoError(t, json.Unmarshal(uploaded, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, int64(1), decoded[0].ID)
	m.AssertExpectations(t)
}

func TestSaveError(t *testing.T) {
	m := new(mocks.Client)
	m.On("PutObject", mock.Anything, "snaps", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("boom"))

	_, err := New(m, "snaps").Save(context.Background(), nil)
	assert.ErrorContains(t, err, "boom")
}

func TestLoad(t *testing.T) {
	m := new(mocks.Client)
	body := `[{"id": 2, "rooms": "1", "price": 7000000, "status": "free", "url": ""}]`
	m.On("GetObject", mock.Anything, "snaps", "snapshots/2025-03-01T12:00:00Z.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(body))), nil)

	flats, err := New(m, "snaps").Load(context.Background(), "2025-03-01T12:00:00Z")
	require.NoError(t, err)
	require.Len(t, flats, 1)
	assert.Equal(t, int64(7000000), flats[0].Price)
}

func TestLoadMalformed(t *testing.T) {
	m := new(mocks.Client)
	m.On("GetObject", mock.Anything, "snaps", "snapshots/x.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("{"))), nil)

	_, err := New(m, "snaps").Load(context.Background(), "snapshots/x.json")
	assert.ErrorContains(t, err, "failed to decode snapshot")
}

func TestLatest(t *testing.T) {
	t.Run("Newest Wins", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(mocks.Listing(
			"snapshots/2025-03-02T00:00:00Z.json",
			"snapshots/2025-03-01T00:00:00Z.json",
			"snapshots/readme.txt",
		))

		name, err := New(m, "snaps").Latest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "snapshots/2025-03-02T00:00:00Z.json", name)
	})

	t.Run("Empty", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(mocks.Listing())

		_, err := New(m, "snaps").Latest(context.Background())
		assert.ErrorIs(t, err, ErrNoSnapshots)
	})
}

func TestPrune(t *testing.T) {
	m := new(mocks.Client)
	m.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(mocks.Listing(
		"snapshots/2025-03-01T00:00:00Z.json",
		"snapshots/2025-03-02T00:00:00Z.json",
		"snapshots/2025-03-03T00:00:00Z.json",
	))

	var removed []string
	m.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(nil)

	n, err := New(m, "snaps").Prune(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"snapshots/2025-03-01T00:00:00Z.json",
		"snapshots/2025-03-02T00:00:00Z.json",
	}, removed)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "snapshots/a.json", objectKey("a"))
	assert.Equal(t, "snapshots/a.json", objectKey("a.json"))
	assert.Equal(t, "snapshots/a.json", objectKey("snapshots/a.json"))
}
