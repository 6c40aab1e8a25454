package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader lets tests substitute the on-disk loader strategy.
type fakeLoader struct {
	ext  string
	tree Tree
	err  error
}

func (f *fakeLoader) Supports(path string) bool {
	return len(path) >= len(f.ext) && path[len(path)-len(f.ext):] == f.ext
}

func (f *fakeLoader) Load(path string) (Tree, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tree, nil
}

func TestStoreLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "development.yml", `
application:
  date_timezone: "UTC"
server:
  host: "127.0.0.1"
  port: 8081
auth:
  enabled: true
`)

	store := NewStore()
	require.NoError(t, store.Load(path))

	assert.Equal(t, "UTC", store.GetString("application.date_timezone"))
	assert.Equal(t, "127.0.0.1", store.GetString("server.host"))
	assert.Equal(t, 8081, store.GetInt("server.port"))
	assert.True(t, store.GetBool("auth.enabled"))

	// Absent keys resolve to zero values, never errors.
	assert.Nil(t, store.Get("does.not.exist"))
	assert.Equal(t, "", store.GetString("does.not.exist"))
	assert.Equal(t, 0, store.GetInt("does.not.exist"))
	assert.False(t, store.GetBool("does.not.exist"))
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore()
	err := store.Load("/nonexistent/config/production.yml")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Nil(t, store.Tree())
}

func TestStoreLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "production.toml", "key = 1")

	store := NewStore()
	err := store.Load(path)
	require.Error(t, err)

	var format *FormatError
	assert.ErrorAs(t, err, &format)
}

func TestStoreCustomLoader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "testing.fake", "ignored")

	store := NewStore(&fakeLoader{
		ext:  ".fake",
		tree: Tree{"custom": map[string]any{"value": "loaded"}},
	})
	require.NoError(t, store.Load(path))
	assert.Equal(t, "loaded", store.GetString("custom.value"))
}
