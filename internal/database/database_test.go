package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetapp/internal/models"
)

func TestOpenLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")

	db, err := OpenLocal(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, db.Migrator().HasTable(&models.KVEntry{}))

	// Reopening an existing file keeps its rows.
	require.NoError(t, db.Create(&models.KVEntry{Key: "k", Value: "v"}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	reopened, err := OpenLocal(path)
	require.NoError(t, err)
	var entry models.KVEntry
	require.NoError(t, reopened.First(&entry, "key = ?", "k").Error)
	assert.Equal(t, "v", entry.Value)
	db = reopened
}

func TestOpenLocalBadPath(t *testing.T) {
	_, err := OpenLocal(filepath.Join(t.TempDir(), "missing", "dir", "local.db"))
	assert.Error(t, err)
}
