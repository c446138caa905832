// Package metrics exposes Prometheus collectors for the monitor.
//
// Collectors live on a private registry so tests can build as many instances as
// they need. A nil *Metrics is valid and records nothing.
//
//   - flat_monitor_reconcile_runs_total{result}
//   - flat_monitor_reconcile_changes_total{kind}
//   - flat_monitor_reconcile_duration_seconds
//   - flat_monitor_flats_tracked{category}
package metrics
