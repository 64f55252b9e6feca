// Package config provides the reviso configuration system: typed settings
// with defaults, TOML/YAML file loading, environment variable overrides,
// and live reload via file watching.
//
// Precedence, lowest to highest: built-in defaults, config file,
// REVISO_-prefixed environment variables.
//
//	cfg, err := config.Load("reviso.toml")
//
// A missing config file is not an error; defaults apply. The Watcher
// delivers freshly re-parsed Configs when the file changes on disk.
package config
