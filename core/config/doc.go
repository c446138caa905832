// Package config loads the flat monitor configuration.
//
// Values come from environment variables, optionally seeded from a .env file,
// then from an optional flat-monitor.{yaml,json,toml} file, and finally fall back
// to the `default` struct tags of each partial config. Nested keys
// map to upper-case variables joined by underscores, e.g. monitor.interval_seconds
// is read from MONITOR_INTERVAL_SECONDS.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, metrics endpoint
//   - Log: level and format
//   - Database: driver (sqlite, mysql, postgres) and connection details
//   - Storage: optional S3/MinIO bucket for the snapshot archive
//   - Source: listing API base URL, complex block id, timeout
//   - Monitor: schedule, complex name, report sizes
//   - Telegram: bot token and chat for scheduled reports
//
// LoadConfig validates the result, so a bad driver or a half-configured bot fails
// at startup. The loaded Config is passed explicitly to constructors; nothing reads it globally.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.BlockID)
package config
