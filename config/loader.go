package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader is a pluggable strategy for reading one configuration document
// from disk. Only the YAML loader ships with the application; the
// interface exists so tests can substitute their own.
type Loader interface {
	// Supports reports whether this loader understands the file at path.
	// It is a pure predicate: no filesystem access.
	Supports(path string) bool
	Load(path string) (Tree, error)
}

// NotFoundError reports a configuration file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file %s does not exist", e.Path)
}

// FormatError reports a configuration file that exists but could not be
// read as a supported structured-data format.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config file %s is not valid: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config file %s is not a supported format", e.Path)
}

func (e *FormatError) Unwrap() error { return e.Err }

// YAMLLoader reads YAML documents through viper.
type YAMLLoader struct{}

func (YAMLLoader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

func (l YAMLLoader) Load(path string) (Tree, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return Tree(v.AllSettings()), nil
}
