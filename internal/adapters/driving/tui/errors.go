// Package tui implements the interactive terminal unit converter
// using the Bubbletea framework.
package tui

import "errors"

// ErrMissingConversionService indicates the conversion service was not provided.
var ErrMissingConversionService = errors.New("conversion service is required")
