package reconcile

import (
	"slices"
)

// BuildPlan compares the stored snapshot with an incoming one.
// It does NOT touch any store; use ApplyPlan for that.
//
// Incoming items sharing a key are not expected, but are tolerated: the last one wins
// and the dropped ones are counted in Summary.Duplicates.
func BuildPlan[T any](adapter Adapter[T], old, incoming []T) *Plan[T] {
	oldIndex := buildIndex(adapter, old)
	newIndex := buildIndex(adapter, incoming)

	plan := &Plan[T]{
		Added:    []T{},
		Removed:  []T{},
		Edited:   []Edit[T]{},
		Snapshot: make([]T, 0, len(newIndex)),
	}

	for _, key := range sortedKeys(newIndex) {
		item := newIndex[key]
		plan.Snapshot = append(plan.Snapshot, item)

		prev, existed := oldIndex[key]
		if !existed {
			plan.Added = append(plan.Added, item)
			continue
		}

		changes := adapter.CompareFields(prev, item)
		if len(changes) == 0 {
			plan.Summary.Unchanged++
			continue
		}
		plan.Edited = append(plan.Edited, Edit[T]{
			Key:     key,
			Old:     prev,
			New:     item,
			Changes: changes,
		})
	}

	for _, key := range sortedKeys(oldIndex) {
		if _, kept := newIndex[key]; !kept {
			plan.Removed = append(plan.Removed, oldIndex[key])
		}
	}

	plan.Summary.Total = len(plan.Snapshot)
	plan.Summary.Added = len(plan.Added)
	plan.Summary.Removed = len(plan.Removed)
	plan.Summary.Edited = len(plan.Edited)
	plan.Summary.Duplicates = len(incoming) - len(newIndex)

	return plan
}

// buildIndex maps items by key. Later items overwrite earlier ones.
func buildIndex[T any](adapter Adapter[T], items []T) map[int64]T {
	index := make(map[int64]T, len(items))
	for _, item := range items {
		index[adapter.Key(item)] = item
	}
	return index
}

func sortedKeys[T any](index map[int64]T) []int64 {
	keys := make([]int64, 0, len(index))
	for key := range index {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
