package reconcile

import (
	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats/models"
)

// FlatAdapter implements the reconcile.Adapter interface for flats.
type FlatAdapter struct {
	fields []models.TrackedField
}

// NewAdapter creates a flat adapter comparing models.TrackedFields.
func NewAdapter() *FlatAdapter {
	return &FlatAdapter{fields: models.TrackedFields}
}

// Name returns the unique name of this adapter.
func (a *FlatAdapter) Name() string {
	return "flats"
}

// Key returns the listing id. A flat keeps its identity even when its rooms
// category changes between snapshots.
func (a *FlatAdapter) Key(f models.Flat) int64 {
	return f.ID
}

// CompareFields returns one change per differing tracked field, in tracked order.
func (a *FlatAdapter) CompareFields(old, new models.Flat) []reconcile.FieldChange {
	var changes []reconcile.FieldChange
	for _, field := range a.fields {
		ov, nv := field.Value(old), field.Value(new)
		if ov != nv {
			changes = append(changes, reconcile.FieldChange{
				Field: field.Name,
				Old:   ov,
				New:   nv,
			})
		}
	}
	return changes
}
