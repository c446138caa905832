package reconcile

import "context"

// Adapter defines the model-specific part of a reconciliation.
// Each adapter knows how to identify an item and how to compare two versions of it
// (e.g., a flat as stored vs the same flat as freshly fetched).
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "flats").
	Name() string

	// Key returns the stable identity of an item. Two items with the same key in
	// consecutive snapshots are the same entity, whatever else changed.
	Key(item T) int64

	// CompareFields compares the tracked fields of two versions of the same entity
	// and returns one FieldChange per differing field, in a fixed field order.
	// An empty result means the versions are equal.
	CompareFields(old, new T) []FieldChange
}

// Store is the durable side of a reconciliation. It holds the latest reconciled
// snapshot and is rewritten to match every new one.
type Store[T any] interface {
	// LoadAll returns every stored item.
	LoadAll(ctx context.Context) ([]T, error)

	// DeleteBatch removes the items with the given keys. Unknown keys are ignored.
	DeleteBatch(ctx context.Context, keys []int64) error

	// UpsertBatch inserts or fully overwrites the given items.
	UpsertBatch(ctx context.Context, items []T) error
}
