package flats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flat-monitor/core/database"
	"flat-monitor/feature/flats"
	"flat-monitor/feature/flats/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *flats.Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := flats.NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func newMockRepo(t *testing.T) (*flats.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return flats.NewRepository(db), mock
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func flat(id int64, rooms string, price int64, status string) models.Flat {
	return models.Flat{ID: id, Rooms: rooms, Price: price, Status: status}
}

func ids(list []models.Flat) []int64 {
	out := make([]int64, 0, len(list))
	for _, f := range list {
		out = append(out, f.ID)
	}
	return out
}

func TestRepositoryUpsertMany(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("Empty Is NoOp", func(t *testing.T) {
		require.NoError(t, repo.UpsertMany(ctx, nil))
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Insert Then Overwrite Every Field", func(t *testing.T) {
		first := flat(1, "0", 9000000, "reserve")
		first.Area = floatPtr(24.5)
		first.Floor = intPtr(3)
		first.Location = strPtr("A-1")
		require.NoError(t, repo.UpsertMany(ctx, []models.Flat{first, flat(2, "1", 7000000, "free")}))

		updated := flat(1, "studio", 8000000, "free")
		updated.URL = "https://example.org/flat/1"
		require.NoError(t, repo.UpsertMany(ctx, []models.Flat{updated}))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, ids(all))

		got := all[0]
		assert.Equal(t, "studio", got.Rooms)
		assert.Equal(t, int64(8000000), got.Price)
		assert.Equal(t, "free", got.Status)
		assert.Equal(t, "https://example.org/flat/1", got.URL)
		assert.Nil(t, got.Area, "absent values overwrite stored ones")
		assert.Nil(t, got.Floor)
		assert.Nil(t, got.Location)
		assert.False(t, got.LastSeen.IsZero())
	})

	t.Run("Large Batch", func(t *testing.T) {
		batch := make([]models.Flat, 0, 120)
		for i := int64(100); i < 220; i++ {
			batch = append(batch, flat(i, "1", i*1000, "free"))
		}
		require.NoError(t, repo.UpsertMany(ctx, batch))

		n, err := repo.CountByCategories(ctx, []string{"1"})
		require.NoError(t, err)
		assert.Equal(t, int64(121), n)
	})
}

func TestRepositoryDeleteByIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.UpsertMany(ctx, []models.Flat{
		flat(1, "0", 1, "free"), flat(2, "0", 2, "free"), flat(3, "1", 3, "free"),
	}))

	require.NoError(t, repo.DeleteByIDs(ctx, nil))
	require.NoError(t, repo.DeleteByIDs(ctx, []int64{2, 99}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(all))
}

func TestRepositorySelectCheapest(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.UpsertMany(ctx, []models.Flat{
		flat(5, "0", 8000000, "free"),
		flat(4, "studio", 7000000, "reserve"),
		flat(3, "студия", 8000000, "free"),
		flat(2, "1", 6000000, "free"),
		flat(1, "0", 9500000, "free"),
		flat(6, "2", 1000000, "free"),
	}))

	studios := models.CategoryStudio.Tokens()

	got, err := repo.SelectCheapest(ctx, studios, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 5}, ids(got), "ascending price, ties by id")

	for i := 0; i < 3; i++ {
		again, err := repo.SelectCheapest(ctx, studios, 3)
		require.NoError(t, err)
		assert.Equal(t, ids(got), ids(again))
	}

	free, err := repo.SelectCheapestFree(ctx, studios, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 1}, ids(free))

	none, err := repo.SelectCheapest(ctx, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, none)

	zero, err := repo.SelectCheapest(ctx, studios, 0)
	require.NoError(t, err)
	assert.Empty(t, zero)
}

func TestRepositoryCounts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.UpsertMany(ctx, []models.Flat{
		flat(1, "0", 9000000, "free"),
		flat(2, "studio", 8500000, "reserve"),
		flat(3, "студия", 8800000, "free"),
		flat(4, "1", 10000000, "free"),
		flat(5, "1", 11000000, "sold"),
		flat(6, "1", 9900000, "reserve"),
		flat(7, "2", 5000000, "free"),
		flat(8, "3", 4000000, "reserve"),
	}))

	studios, err := repo.CountByCategories(ctx, models.CategoryStudio.Tokens())
	require.NoError(t, err)
	assert.Equal(t, int64(3), studios)

	monitored, err := repo.CountByCategories(ctx, models.MonitoredTokens())
	require.NoError(t, err)
	assert.Equal(t, int64(6), monitored)

	empty, err := repo.CountByCategories(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, empty)

	free, other, err := repo.CountByStatus(ctx, models.CategoryStudio.Tokens())
	require.NoError(t, err)
	assert.Equal(t, int64(2), free)
	assert.Equal(t, int64(1), other)

	free, other, err = repo.CountByStatus(ctx, models.CategoryOneRoom.Tokens())
	require.NoError(t, err)
	assert.Equal(t, int64(1), free)
	assert.Equal(t, int64(2), other)

	prices, err := repo.MinPrices(ctx, models.MonitoredTokens(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{8500000, 8800000, 9000000}, prices)
}

func TestRepositoryLastSeen(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.UpsertMany(ctx, []models.Flat{flat(1, "0", 1, "free")}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].LastSeen.After(before))
}

func TestRepositoryStorageErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database is unreachable")

	t.Run("GetAll", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM `flats`").WillReturnError(dbErr)

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, flats.ErrStorage)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SelectCheapest", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM `flats` WHERE rooms IN").WillReturnError(dbErr)

		_, err := repo.SelectCheapest(ctx, []string{"1"}, 3)
		assert.ErrorIs(t, err, flats.ErrStorage)
	})

	t.Run("CountByStatus", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT status, COUNT").WillReturnError(dbErr)

		_, _, err := repo.CountByStatus(ctx, []string{"1"})
		assert.ErrorIs(t, err, flats.ErrStorage)
	})

	t.Run("DeleteByIDs", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `flats`").WillReturnError(dbErr)
		mock.ExpectRollback()

		err := repo.DeleteByIDs(ctx, []int64{1})
		assert.ErrorIs(t, err, flats.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
