// Package domain implements the unit algebra engine at the core of
// unital.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Term / TermSeq: normalised dimension-exponent-prefix factors
//   - Quantity: a value carrying a compound unit, with arithmetic
//   - Family: per-physical-quantity conversion tables
//   - Conversion: a recorded conversion for the history store
//
// The engine itself is four groups of pure functions over term
// sequences: the parser (ParseUnits), the algebra (Merge, Rectify,
// SameDimensions, ScaleExponents), the renderers (FractionalString,
// ExponentialString) and the per-family conversion resolver.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
