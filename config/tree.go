package config

import "strings"

// Tree is one environment's configuration document as a nested mapping.
// It is never mutated after load, so any number of request handlers can
// read it concurrently without locking.
type Tree map[string]any

// Lookup resolves a dotted path such as "application.date_timezone"
// against the tree. A key missing at any depth resolves to nil: absent
// configuration is ordinary data, not an error. A path that lands on a
// nested section returns that whole subtree.
func (t Tree) Lookup(path string) any {
	if t == nil || path == "" {
		return nil
	}
	var node any = map[string]any(t)
	for _, segment := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		if node, ok = m[segment]; !ok {
			return nil
		}
	}
	return node
}
