// Package reconcile provides a generic engine for reconciling a stored snapshot of
// keyed entities with a freshly observed one.
//
// # Architecture
//
// The reconcile system consists of three parts:
//
// 1. Adapter: model-specific logic that extracts the identity key of an entity and
// compares the tracked fields of two versions of it.
//
// 2. Store: the durable current-state cache. It is read once per pass (LoadAll) and
// rewritten to match the new snapshot (DeleteBatch, then UpsertBatch).
//
// 3. Engine: BuildPlan indexes both snapshots by key and splits the union into added,
// removed, edited and unchanged entities; ApplyPlan writes the result back.
//
// # Determinism
//
// Every list in a Plan is ordered by ascending key, so the same pair of snapshots
// always yields the same plan regardless of input order.
//
// # Usage Example
//
//	spec := reconcile.Spec[models.Flat]{
//	    Adapter: flatsReconcile.NewAdapter(),
//	    Store:   repo,
//	}
//
//	plan, err := reconcile.Reconcile(ctx, spec, snapshot, reconcile.Options{})
//	if plan.HasChanges() { ... }
//
// # Concurrency
//
// A pass reads then writes the store, so two overlapping passes could each see the
// other's partial writes. Serializing passes is the caller's job.
package reconcile
