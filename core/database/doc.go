// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure SQLite, MySQL or Postgres
// connections based on the application's configuration. SQLite is the default
// backend and is opened with a single connection, since it allows one writer
// at a time and an in-memory database is bound to its connection.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so that the
// flats repository can refuse to work against a table that lost columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "flats", []string{"id", "price"})
package database
