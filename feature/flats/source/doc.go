// Package source fetches the current listings of the monitored complex from
// the developer's public listing API.
//
// The API answers GET {base}/v1/flat?block_id={id} with either a bare JSON array
// of flats or an object wrapping it under "data", "result" or "flats". Items are
// decoded loosely: numbers may arrive as strings, and missing optional attributes
// stay nil. Items that are not objects or carry no id are skipped with a warning.
//
// Every failure (network, timeout, non-2xx status, malformed payload) wraps ErrFetch.
package source
