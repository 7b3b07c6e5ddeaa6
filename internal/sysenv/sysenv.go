// Package sysenv abstracts process environment access so PATH resolution can
// be exercised against a fake environment in tests.
package sysenv

import "os"

// ProbeMarker is set in the environment of the shell spawned to read the
// system PATH. An envpath started by that shell's startup files must not
// spawn another one.
const ProbeMarker = "ENVPATH_PROBING"

// Env reads and writes process environment variables.
type Env interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)

	// Set assigns value to key.
	Set(key, value string) error
}

// Process is the real process environment.
type Process struct{}

// Lookup reads key via os.LookupEnv.
func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set writes key via os.Setenv.
func (Process) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Get returns the value of key, or "" when unset.
func Get(env Env, key string) string {
	v, _ := env.Lookup(key)
	return v
}

// Home returns HOME, falling back to USERPROFILE. Empty means unknown.
func Home(env Env) string {
	if h := Get(env, "HOME"); h != "" {
		return h
	}
	return Get(env, "USERPROFILE")
}
