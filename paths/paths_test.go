package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podium/config"
)

func TestResolveTable(t *testing.T) {
	base := filepath.Join("/srv", "podium")

	tests := []struct {
		slug Slug
		want string
	}{
		{Config, filepath.Join(base, "config", "production.yml")},
		{Upload, filepath.Join(base, "web", "uploads")},
		{Templates, filepath.Join(base, "templates")},
		{Public, filepath.Join(base, "web")},
		{Assets, filepath.Join(base, "web", "assets")},
		{CacheTwig, filepath.Join(base, "cache", "twig")},
		{CachePurifier, filepath.Join(base, "cache", "htmlpurifier")},
	}

	for _, tt := range tests {
		t.Run(string(tt.slug), func(t *testing.T) {
			got, ok := Resolve(base, config.Production, tt.slug)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnknownSlug(t *testing.T) {
	_, ok := Resolve("/srv/podium", config.Production, Slug("bogus"))
	assert.False(t, ok)
}

func TestResolveIsPure(t *testing.T) {
	base := "/srv/podium"

	// Same inputs, same path, regardless of call order or repetition.
	first, _ := Resolve(base, config.Development, CacheTwig)
	_, _ = Resolve(base, config.Development, Upload)
	_, _ = Resolve("/elsewhere", config.Production, CacheTwig)
	second, _ := Resolve(base, config.Development, CacheTwig)

	assert.Equal(t, first, second)
}

func TestConfigPathFollowsEnvironment(t *testing.T) {
	base := "/srv/podium"

	prod, _ := Resolve(base, config.Production, Config)
	dev, _ := Resolve(base, config.Development, Config)

	assert.Contains(t, prod, "production.yml")
	assert.Contains(t, dev, "development.yml")
	assert.NotEqual(t, prod, dev)
}

func TestResolveAll(t *testing.T) {
	set := ResolveAll("/srv/podium", config.Testing)

	require.Len(t, set, len(Slugs()))
	for _, slug := range Slugs() {
		want, _ := Resolve("/srv/podium", config.Testing, slug)
		assert.Equal(t, want, set.Get(slug))
		assert.Equal(t, want, set[Key(slug)])
	}
}

func TestKeyNamespacing(t *testing.T) {
	assert.Equal(t, "paths.cache.twig", Key(CacheTwig))
	assert.Equal(t, "paths.config", Key(Config))
}
