// Package archive keeps fetched snapshots in object storage so that any past
// pass can be replayed through the reconciliation engine.
//
// Snapshots are stored as JSON arrays of flats under snapshots/<UTC RFC3339>.json.
// Names sort chronologically, which is what Latest and Prune rely on.
package archive
