package reconcile

import (
	"context"
	"fmt"
)

// Reconcile performs a full reconciliation pass: it loads the stored snapshot,
// compares it with the incoming one and rewrites the store to match.
//
// A failing load leaves the store untouched. Callers must not run two passes
// against the same store concurrently.
func Reconcile[T any](ctx context.Context, spec Spec[T], incoming []T, opts Options) (*Plan[T], error) {
	old, err := spec.Store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot: %w", spec.Adapter.Name(), err)
	}

	plan := BuildPlan(spec.Adapter, old, incoming)

	if _, err := ApplyPlan(ctx, spec, plan, opts); err != nil {
		return nil, err
	}

	return plan, nil
}

// ApplyPlan writes a plan to the store and returns the number of entities written
// or deleted. Removed keys are deleted first, then the whole snapshot is upserted.
// Re-running a partially applied plan is safe: the upsert never re-adds removed keys,
// and the next successful pass re-derives the full state anyway.
func ApplyPlan[T any](ctx context.Context, spec Spec[T], plan *Plan[T], opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	if len(plan.Removed) > 0 {
		keys := plan.RemovedKeys(spec.Adapter)
		if err := spec.Store.DeleteBatch(ctx, keys); err != nil {
			return executed, fmt.Errorf("failed to delete %d %s: %w", len(keys), spec.Adapter.Name(), err)
		}
		executed += len(keys)
	}

	if len(plan.Snapshot) > 0 {
		if err := spec.Store.UpsertBatch(ctx, plan.Snapshot); err != nil {
			return executed, fmt.Errorf("failed to upsert %d %s: %w", len(plan.Snapshot), spec.Adapter.Name(), err)
		}
		executed += len(plan.Snapshot)
	}

	return executed, nil
}
