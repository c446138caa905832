package reconcile

// FieldChange describes one tracked field that differs between two versions of an entity.
type FieldChange struct {
	// Field is the tracked field name, e.g. "price".
	Field string `json:"field"`

	// Old is the previous value. nil means the field was absent.
	Old any `json:"old"`

	// New is the current value. nil means the field is absent.
	New any `json:"new"`
}

// Edit is an entity present in both snapshots whose tracked fields differ.
type Edit[T any] struct {
	Key     int64         `json:"key"`
	Old     T             `json:"old"`
	New     T             `json:"new"`
	Changes []FieldChange `json:"changes"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDelete removes an entity that left the snapshot.
	ActionDelete ActionType = "delete"
	// ActionUpsert writes an entity of the new snapshot.
	ActionUpsert ActionType = "upsert"
)

// Plan contains the outcome of comparing a stored snapshot with a new one.
// Every list is ordered by ascending key.
type Plan[T any] struct {
	// Added holds entities present only in the new snapshot.
	Added []T `json:"added"`

	// Removed holds the last stored version of entities missing from the new snapshot.
	Removed []T `json:"removed"`

	// Edited holds entities present in both snapshots with differing tracked fields.
	Edited []Edit[T] `json:"edited"`

	// Snapshot is the deduplicated new snapshot that the store is rewritten to.
	Snapshot []T `json:"snapshot"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// HasChanges reports whether anything was added, removed or edited.
func (p *Plan[T]) HasChanges() bool {
	return len(p.Added) > 0 || len(p.Removed) > 0 || len(p.Edited) > 0
}

// RemovedKeys returns the keys of removed entities in ascending order.
func (p *Plan[T]) RemovedKeys(adapter Adapter[T]) []int64 {
	keys := make([]int64, 0, len(p.Removed))
	for _, item := range p.Removed {
		keys = append(keys, adapter.Key(item))
	}
	return keys
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Total is the number of entities in the new snapshot.
	Total int `json:"total"`

	// Added counts entities only in the new snapshot.
	Added int `json:"added"`

	// Removed counts entities only in the stored snapshot.
	Removed int `json:"removed"`

	// Edited counts common entities with field differences.
	Edited int `json:"edited"`

	// Unchanged counts common entities without field differences.
	Unchanged int `json:"unchanged"`

	// Duplicates counts incoming items dropped because a later item had the same key.
	Duplicates int `json:"duplicates"`
}

// Options controls how a plan is applied.
type Options struct {
	// DryRun computes the plan without touching the store.
	DryRun bool
}

// Spec bundles what a reconciliation pass needs.
type Spec[T any] struct {
	// Adapter provides model-specific identity and comparison.
	Adapter Adapter[T]

	// Store holds the previously reconciled snapshot.
	Store Store[T]
}
