// Package integrity checks the infrastructure the flat monitor depends on.
//
// Unlike the 'flats' package, which reconciles listings, this package validates
// that the store and the snapshot archive are usable.
//
// # Checks Provided
//
//   - Schema: the flats table exists and carries every column the repository reads.
//   - Archive: the snapshot bucket exists; reports the snapshot count and the newest one.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
