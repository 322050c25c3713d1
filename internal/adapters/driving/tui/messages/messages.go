// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/unital-labs/unital-cli/internal/core/domain"
)

// ConversionCompleted carries the outcome of a conversion back to the model.
type ConversionCompleted struct {
	Result domain.Conversion
	Err    error
}
