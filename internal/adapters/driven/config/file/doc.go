// Package file provides a TOML-backed implementation of the
// driven.ConfigStore port. Configuration lives under the unital config
// directory (~/.unital by default).
package file
