// Package paths derives every named filesystem location the application
// uses from a single base path. Consumers only ever see resolved paths;
// the layout rules live in one table here.
package paths

import (
	"path/filepath"
	"sort"

	"podium/config"
)

// Slug names one logical filesystem location.
type Slug string

const (
	Config        Slug = "config"
	Upload        Slug = "upload"
	Templates     Slug = "templates"
	Public        Slug = "public"
	Assets        Slug = "assets"
	CacheTwig     Slug = "cache.twig"
	CachePurifier Slug = "cache.purifier"
)

// table maps each slug to its derivation rule. Every rule is a pure
// function of (base, env); changing the on-disk layout means changing
// this table and nothing else.
var table = map[Slug]func(base string, env config.Environment) string{
	Config: func(base string, env config.Environment) string {
		return filepath.Join(base, "config", env.String()+".yml")
	},
	Upload: func(base string, _ config.Environment) string {
		return filepath.Join(base, "web", "uploads")
	},
	Templates: func(base string, _ config.Environment) string {
		return filepath.Join(base, "templates")
	},
	Public: func(base string, _ config.Environment) string {
		return filepath.Join(base, "web")
	},
	Assets: func(base string, _ config.Environment) string {
		return filepath.Join(base, "web", "assets")
	},
	CacheTwig: func(base string, _ config.Environment) string {
		return filepath.Join(base, "cache", "twig")
	},
	CachePurifier: func(base string, _ config.Environment) string {
		return filepath.Join(base, "cache", "htmlpurifier")
	},
}

// Key returns the namespaced lookup key a slug's path is stored under,
// e.g. "paths.cache.twig".
func Key(slug Slug) string { return "paths." + string(slug) }

// Resolve derives the path for one slug. The second return is false for
// slugs not in the table.
func Resolve(base string, env config.Environment, slug Slug) (string, bool) {
	derive, ok := table[slug]
	if !ok {
		return "", false
	}
	return derive(base, env), true
}

// Set holds every resolved path keyed by its namespaced name.
type Set map[string]string

// ResolveAll eagerly derives every known path at startup.
func ResolveAll(base string, env config.Environment) Set {
	set := make(Set, len(table))
	for slug, derive := range table {
		set[Key(slug)] = derive(base, env)
	}
	return set
}

// Get returns the resolved path for slug, "" when unknown.
func (s Set) Get(slug Slug) string { return s[Key(slug)] }

// Slugs lists every known slug in stable order.
func Slugs() []Slug {
	slugs := make([]Slug, 0, len(table))
	for slug := range table {
		slugs = append(slugs, slug)
	}
	sort.Slice(slugs, func(i, j int) bool { return slugs[i] < slugs[j] })
	return slugs
}
