package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenCreatesDirectoryAndDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "podium.db")

	db, err := Open(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE talks (id INTEGER PRIMARY KEY, title TEXT NOT NULL)")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO talks (title) VALUES (?)", "Profiling Go Services")
	require.NoError(t, err)

	var title string
	require.NoError(t, db.QueryRow("SELECT title FROM talks WHERE id = 1").Scan(&title))
	assert.Equal(t, "Profiling Go Services", title)
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "podium.db")

	db, err := Open(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}
