package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTree() Tree {
	return Tree{
		"application": map[string]any{
			"date_timezone": "America/Chicago",
			"secret":        "abc123",
		},
		"database": map[string]any{
			"path": "/var/lib/podium/podium.db",
			"pool": map[string]any{
				"max_open": 10,
			},
		},
		"debug": false,
	}
}

func TestTreeLookupPresent(t *testing.T) {
	tree := testTree()

	assert.Equal(t, "America/Chicago", tree.Lookup("application.date_timezone"))
	assert.Equal(t, "/var/lib/podium/podium.db", tree.Lookup("database.path"))
	assert.Equal(t, 10, tree.Lookup("database.pool.max_open"))
	assert.Equal(t, false, tree.Lookup("debug"))
}

func TestTreeLookupReturnsSubtree(t *testing.T) {
	tree := testTree()

	got := tree.Lookup("database.pool")
	assert.Equal(t, map[string]any{"max_open": 10}, got)
}

func TestTreeLookupAbsentIsNil(t *testing.T) {
	tree := testTree()

	// Absence is data, not an error: every miss is plain nil.
	tests := []string{
		"missing",
		"application.missing",
		"application.date_timezone.deeper", // descends through a scalar
		"database.pool.max_open.nope",
		"a.b.c.d.e",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Nil(t, tree.Lookup(path))
		})
	}
}

func TestTreeLookupEdgeCases(t *testing.T) {
	assert.Nil(t, Tree(nil).Lookup("anything"))
	assert.Nil(t, testTree().Lookup(""))
}
