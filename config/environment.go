package config

import "fmt"

// Environment identifies which deployment environment the application is
// running in. It is a plain value: two independently constructed
// production environments compare equal.
type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Testing     Environment = "testing"
)

// ParseEnvironment validates name against the recognized environment set.
func ParseEnvironment(name string) (Environment, error) {
	switch env := Environment(name); env {
	case Production, Development, Testing:
		return env, nil
	}
	return "", fmt.Errorf("unrecognized environment %q (expected production, development or testing)", name)
}

func (e Environment) String() string { return string(e) }

// Equals reports whether both values name the same environment.
func (e Environment) Equals(other Environment) bool { return e == other }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsTesting() bool { return e == Testing }
