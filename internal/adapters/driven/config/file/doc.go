// Package file provides a TOML file-backed config store and the
// resolution of effective settings from environment, config file, and
// built-in defaults.
package file
