// Package config loads the envpath TOML configuration file.
// A missing file is not an error; defaults apply (timeout 5000 ms, path validation on).
package config
