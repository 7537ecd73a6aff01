package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	err = db.Ping()
	assert.NoError(t, err)
}

func TestMigrationsCreateTables(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	var tableName string

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='locations'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "locations", tableName)

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='assets'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "assets", tableName)
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	// Re-running against an up-to-date schema must be a no-op.
	err = runMigrations(db)
	assert.NoError(t, err)

	_, err = db.Exec("INSERT INTO locations (name) VALUES ('Main Hall')")
	assert.NoError(t, err)
}
