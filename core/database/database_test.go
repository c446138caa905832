package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "flats",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory Keeps State", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		require.NoError(t, db.Exec("CREATE TABLE kept (id INTEGER PRIMARY KEY)").Error)
		require.NoError(t, db.Exec("INSERT INTO kept (id) VALUES (1)").Error)

		// A second statement must see the same in-memory database.
		var count int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM kept").Scan(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestSqliteParams(t *testing.T) {
	assert.Equal(t, "", sqliteParams(":memory:"))
	assert.Equal(t, "?_busy_timeout=5000", sqliteParams("flats.db"))
	assert.Equal(t, "&_busy_timeout=5000", sqliteParams("file:flats.db?cache=shared"))
}
