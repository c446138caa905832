package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_FirstRun(t *testing.T) {
	plan := BuildPlan[item](itemAdapter{}, nil, []item{{ID: 3}, {ID: 1}, {ID: 2}})

	assert.Equal(t, []int64{1, 2, 3}, keysOf(plan.Added))
	assert.Empty(t, plan.Removed)
	assert.Empty(t, plan.Edited)
	assert.Equal(t, []int64{1, 2, 3}, keysOf(plan.Snapshot))
	assert.True(t, plan.HasChanges())
	assert.Equal(t, PlanSummary{Total: 3, Added: 3}, plan.Summary)
}

func TestBuildPlan_EmptyBoth(t *testing.T) {
	plan := BuildPlan[item](itemAdapter{}, nil, nil)

	assert.False(t, plan.HasChanges())
	assert.Empty(t, plan.Snapshot)
	assert.NotNil(t, plan.Added)
	assert.NotNil(t, plan.Edited)
}

func TestBuildPlan_AddRemoveEdit(t *testing.T) {
	old := []item{
		{ID: 1, Price: 9_000_000},
		{ID: 3, Price: 7_600_000},
		{ID: 4, Price: 5_000_000},
	}
	incoming := []item{
		{ID: 4, Price: 5_000_000},
		{ID: 2, Price: 7_000_000},
		{ID: 1, Price: 8_000_000},
	}

	plan := BuildPlan(itemAdapter{}, old, incoming)

	assert.Equal(t, []int64{2}, keysOf(plan.Added))
	assert.Equal(t, []int64{3}, keysOf(plan.Removed))
	assert.Equal(t, int64(7_600_000), plan.Removed[0].Price, "removed keeps the last known version")

	require.Len(t, plan.Edited, 1)
	assert.Equal(t, int64(1), plan.Edited[0].Key)
	assert.Equal(t, []FieldChange{{Field: "price", Old: int64(9_000_000), New: int64(8_000_000)}}, plan.Edited[0].Changes)

	assert.Equal(t, []int64{1, 2, 4}, keysOf(plan.Snapshot))
	assert.Equal(t, 1, plan.Summary.Unchanged)
	assert.Equal(t, []int64{3}, plan.RemovedKeys(itemAdapter{}))
}

func TestBuildPlan_NilIsNotEmpty(t *testing.T) {
	old := []item{{ID: 1, Note: nil}, {ID: 2, Note: strPtr("")}}
	incoming := []item{{ID: 1, Note: strPtr("")}, {ID: 2, Note: strPtr("")}}

	plan := BuildPlan(itemAdapter{}, old, incoming)

	require.Len(t, plan.Edited, 1)
	assert.Equal(t, int64(1), plan.Edited[0].Key)
	assert.Equal(t, FieldChange{Field: "note", Old: nil, New: ""}, plan.Edited[0].Changes[0])
}

func TestBuildPlan_DuplicateKeysLastWins(t *testing.T) {
	incoming := []item{{ID: 1, Price: 1}, {ID: 1, Price: 2}, {ID: 1, Price: 3}}

	plan := BuildPlan(itemAdapter{}, nil, incoming)

	require.Len(t, plan.Snapshot, 1)
	assert.Equal(t, int64(3), plan.Snapshot[0].Price)
	assert.Equal(t, 2, plan.Summary.Duplicates)
}

// TestBuildPlan_Partition checks that added, removed and common keys split the
// union of both key sets with no overlap, and unchanged entities never show as edited.
func TestBuildPlan_Partition(t *testing.T) {
	old := []item{{ID: 1}, {ID: 2, Price: 5}, {ID: 5}, {ID: 8, Price: 1}}
	incoming := []item{{ID: 2, Price: 6}, {ID: 3}, {ID: 5}, {ID: 13}}

	plan := BuildPlan(itemAdapter{}, old, incoming)

	seen := map[int64]string{}
	mark := func(kind string, keys []int64) {
		for _, k := range keys {
			_, dup := seen[k]
			assert.False(t, dup, "key %d classified twice", k)
			seen[k] = kind
		}
	}
	mark("added", keysOf(plan.Added))
	mark("removed", keysOf(plan.Removed))
	for _, e := range plan.Edited {
		mark("edited", []int64{e.Key})
	}
	mark("unchanged", []int64{5})

	assert.Len(t, seen, 6)
	assert.Equal(t, map[int64]string{
		1: "removed", 8: "removed",
		3: "added", 13: "added",
		2: "edited",
		5: "unchanged",
	}, seen)
}
