// Package middleware groups the HTTP middleware of the flat monitor API.
//
// # Components
//
//   - auth: checks the X-API-Key header; /metrics can be exempted for scrapers.
//   - rayid: tags each request with a ray id, echoed in the X-Ray-ID header and
//     picked up by logger.WithRayID.
//
// The start command installs rayid first so that auth failures are traceable.
package middleware
