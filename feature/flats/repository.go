package flats

import (
	"context"
	"fmt"
	"time"

	"flat-monitor/core/database"
	"flat-monitor/feature/flats/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertBatchSize keeps multi-row inserts under the SQLite variable limit.
const upsertBatchSize = 25

// Repository is the durable current-state cache of flats, keyed by id.
// It holds no business logic.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a repository on an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Migrate creates or updates the flats table and verifies that it carries every
// column the repository reads.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Flat{}); err != nil {
		return storageError("migrate flats", err)
	}

	missing, err := database.MissingColumns(r.db.WithContext(ctx), models.Flat{}.TableName(), models.TrackedColumns)
	if err != nil {
		return storageError("inspect flats", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: flats table is missing columns %v", ErrStorage, missing)
	}
	return nil
}

// UpsertMany inserts flats with unknown ids and overwrites every field of known ones.
// The batch runs in one transaction, so no reader sees a partially written flat.
func (r *Repository) UpsertMany(ctx context.Context, flats []models.Flat) error {
	if len(flats) == 0 {
		return nil
	}

	now := r.now().UTC()
	rows := make([]models.Flat, len(flats))
	for i, f := range flats {
		f.LastSeen = now
		rows[i] = f
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).CreateInBatches(&rows, upsertBatchSize).Error
	})
	if err != nil {
		return storageError("upsert flats", err)
	}
	return nil
}

// DeleteByIDs removes the flats with the given ids. Unknown ids are ignored.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Flat{}).Error; err != nil {
		return storageError("delete flats", err)
	}
	return nil
}

// GetAll returns every stored flat ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.Flat, error) {
	var flats []models.Flat
	if err := r.db.WithContext(ctx).Order("id").Find(&flats).Error; err != nil {
		return nil, storageError("load flats", err)
	}
	return flats, nil
}

// SelectCheapest returns up to limit flats whose rooms token is in rooms, by
// ascending price. Ties are broken by id so repeated calls agree.
func (r *Repository) SelectCheapest(ctx context.Context, rooms []string, limit int) ([]models.Flat, error) {
	return r.selectCheapest(ctx, rooms, limit, false)
}

// SelectCheapestFree is SelectCheapest restricted to flats open for sale.
func (r *Repository) SelectCheapestFree(ctx context.Context, rooms []string, limit int) ([]models.Flat, error) {
	return r.selectCheapest(ctx, rooms, limit, true)
}

func (r *Repository) selectCheapest(ctx context.Context, rooms []string, limit int, freeOnly bool) ([]models.Flat, error) {
	if len(rooms) == 0 || limit <= 0 {
		return []models.Flat{}, nil
	}

	q := r.db.WithContext(ctx).Where("rooms IN ?", rooms)
	if freeOnly {
		q = q.Where("status = ?", models.StatusFree)
	}

	var flats []models.Flat
	if err := q.Order("price ASC").Order("id ASC").Limit(limit).Find(&flats).Error; err != nil {
		return nil, storageError("select cheapest flats", err)
	}
	return flats, nil
}

// CountByCategories counts stored flats whose rooms token is in rooms.
func (r *Repository) CountByCategories(ctx context.Context, rooms []string) (int64, error) {
	if len(rooms) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Flat{}).Where("rooms IN ?", rooms).Count(&count).Error; err != nil {
		return 0, storageError("count flats", err)
	}
	return count, nil
}

// CountByStatus splits the flats whose rooms token is in rooms into free ones
// and all others (reserved or sold).
func (r *Repository) CountByStatus(ctx context.Context, rooms []string) (free, other int64, err error) {
	if len(rooms) == 0 {
		return 0, 0, nil
	}

	var rows []struct {
		Status string
		Total  int64
	}
	err = r.db.WithContext(ctx).Model(&models.Flat{}).
		Select("status, COUNT(*) AS total").
		Where("rooms IN ?", rooms).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, storageError("count flats by status", err)
	}

	for _, row := range rows {
		if row.Status == models.StatusFree {
			free += row.Total
		} else {
			other += row.Total
		}
	}
	return free, other, nil
}

// MinPrices returns up to limit lowest prices among flats whose rooms token is in rooms.
// Duplicated prices are kept.
func (r *Repository) MinPrices(ctx context.Context, rooms []string, limit int) ([]int64, error) {
	if len(rooms) == 0 || limit <= 0 {
		return []int64{}, nil
	}
	prices := []int64{}
	err := r.db.WithContext(ctx).Model(&models.Flat{}).
		Where("rooms IN ?", rooms).
		Order("price ASC").Order("id ASC").
		Limit(limit).
		Pluck("price", &prices).Error
	if err != nil {
		return nil, storageError("select min prices", err)
	}
	return prices, nil
}

// LoadAll, DeleteBatch and UpsertBatch make the repository a reconcile.Store.

func (r *Repository) LoadAll(ctx context.Context) ([]models.Flat, error) {
	return r.GetAll(ctx)
}

func (r *Repository) DeleteBatch(ctx context.Context, keys []int64) error {
	return r.DeleteByIDs(ctx, keys)
}

func (r *Repository) UpsertBatch(ctx context.Context, items []models.Flat) error {
	return r.UpsertMany(ctx, items)
}
