package config

import "os"

// Store owns the loader strategies and the loaded configuration tree.
// Load runs once during bootstrap; afterwards the store is read-only.
type Store struct {
	loaders []Loader
	tree    Tree
}

// NewStore builds a store over the given loader strategies. With no
// arguments it uses the standard YAML loader.
func NewStore(loaders ...Loader) *Store {
	if len(loaders) == 0 {
		loaders = []Loader{YAMLLoader{}}
	}
	return &Store{loaders: loaders}
}

// Load reads the document at path with the first loader that supports
// it. A missing file is a NotFoundError and a file no loader supports
// is a FormatError; both abort startup when surfaced through bootstrap.
func (s *Store) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: path}
		}
		return err
	}
	for _, l := range s.loaders {
		if !l.Supports(path) {
			continue
		}
		tree, err := l.Load(path)
		if err != nil {
			return err
		}
		s.tree = tree
		return nil
	}
	return &FormatError{Path: path}
}

// Tree returns the loaded tree. Nil before Load.
func (s *Store) Tree() Tree { return s.tree }

// Get resolves a dotted path, returning nil for absent keys.
func (s *Store) Get(path string) any { return s.tree.Lookup(path) }

// GetString returns the string at path, or "" when the key is absent or
// holds a non-string value.
func (s *Store) GetString(path string) string {
	v, _ := s.tree.Lookup(path).(string)
	return v
}

// GetBool returns the bool at path, false when absent.
func (s *Store) GetBool(path string) bool {
	v, _ := s.tree.Lookup(path).(bool)
	return v
}

// GetInt returns the integer at path, 0 when absent. YAML integers may
// decode as int or float64 depending on the document.
func (s *Store) GetInt(path string) int {
	switch v := s.tree.Lookup(path).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
