package domain

import "time"

// Conversion records one completed unit conversion for the history
// store.
type Conversion struct {
	// ID is the unique identifier for the conversion.
	ID string `json:"id"`

	// Family is the name of the family that performed the conversion.
	Family string `json:"family"`

	// FromUnit is the source unit name as entered.
	FromUnit string `json:"from_unit"`

	// ToUnit is the target unit name as entered.
	ToUnit string `json:"to_unit"`

	// Input is the value converted.
	Input float64 `json:"input"`

	// Output is the converted value.
	Output float64 `json:"output"`

	// ConvertedAt is when the conversion happened.
	ConvertedAt time.Time `json:"converted_at"`
}
