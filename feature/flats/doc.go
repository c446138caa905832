// Package flats monitors the flats of one residential complex.
//
// Each pass takes a snapshot of the listings (fetched or given), keeps the
// monitored categories (studios and 1-room flats), and reconciles the flats table
// with it through the core/reconcile engine. The outcome is a change report
// listing added, removed and edited flats, followed by summary statistics.
//
// # Components
//
//   - Repository: the State Store. A gorm-backed current-state cache keyed by flat id.
//   - Service: the reconciliation engine. Serializes passes and renders reports.
//   - Job: runs passes on a timer and sends reports to a Notifier.
//   - Handler: exposes the service over HTTP.
//   - StatsCache: short-lived cache of stats reports.
//
// # HTTP Endpoints
//
//   - GET  /flats          : Stored snapshot.
//   - GET  /flats/studios  : Cheapest studios (?limit=10).
//   - GET  /flats/one      : Cheapest 1-room flats (?limit=10).
//   - GET  /flats/stats    : Stats report (?links=true).
//   - POST /flats/refresh  : Run a pass against the listing API.
//   - POST /flats/replay   : Run a pass over a JSON snapshot (?dry_run=true).
package flats
