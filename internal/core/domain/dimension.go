package domain

// Dimension identifies one of the seven SI base quantities.
// Reciprocal is a synthetic marker used to render a bare "1"
// numerator when a unit has no positive-exponent term.
type Dimension int

// SI base dimensions.
const (
	// DimTime is time (second).
	DimTime Dimension = iota

	// DimLength is length (metre).
	DimLength

	// DimMass is mass (kilogram).
	DimMass

	// DimCurrent is electric current (ampere).
	DimCurrent

	// DimTemperature is thermodynamic temperature (kelvin).
	DimTemperature

	// DimAmount is amount of substance (mole).
	DimAmount

	// DimLuminous is luminous intensity (candela).
	DimLuminous

	// DimReciprocal marks a pure-reciprocal numerator such as 1/m.
	DimReciprocal
)

// dimensionSymbols maps each dimension to the symbol used when
// rendering a term sequence back to text.
var dimensionSymbols = map[Dimension]string{
	DimTime:        "s",
	DimLength:      "m",
	DimMass:        "kg",
	DimCurrent:     "A",
	DimTemperature: "K",
	DimAmount:      "mol",
	DimLuminous:    "cd",
	DimReciprocal:  "1",
}

// IsValid returns true if the dimension is recognised.
func (d Dimension) IsValid() bool {
	_, ok := dimensionSymbols[d]
	return ok
}

// Symbol returns the canonical unit symbol for the dimension.
// Mass renders as "kg" rather than "g" to match SI convention.
func (d Dimension) Symbol() string {
	if sym, ok := dimensionSymbols[d]; ok {
		return sym
	}
	return "?"
}

// String returns a human-readable name for the dimension.
func (d Dimension) String() string {
	switch d {
	case DimTime:
		return "time"
	case DimLength:
		return "length"
	case DimMass:
		return "mass"
	case DimCurrent:
		return "current"
	case DimTemperature:
		return "temperature"
	case DimAmount:
		return "amount of substance"
	case DimLuminous:
		return "luminous intensity"
	case DimReciprocal:
		return "reciprocal"
	default:
		return "unknown"
	}
}

// symbolDimensions maps every unit symbol accepted by the parser to
// its base dimension. Non-SI symbols (ft, oz, ...) share the dimension
// of their SI counterpart; conversion factors live in the family
// tables, not here.
var symbolDimensions = map[string]Dimension{
	// Pure reciprocal numerator.
	"1": DimReciprocal,

	// Time.
	"s":   DimTime,
	"min": DimTime,
	"hr":  DimTime,
	"day": DimTime,

	// Length.
	"m":      DimLength,
	"ft":     DimLength,
	"yd":     DimLength,
	"mi":     DimLength,
	"inch":   DimLength,
	"fathom": DimLength,
	"chain":  DimLength,
	"link":   DimLength,
	"rod":    DimLength,

	// Mass.
	"g":     DimMass,
	"tonne": DimMass,
	"oz":    DimMass,
	"lb":    DimMass,
	"gr":    DimMass,
	"stone": DimMass,
	"carat": DimMass,

	// Current.
	"A": DimCurrent,

	// Temperature.
	"K": DimTemperature,

	// Amount of substance.
	"mol": DimAmount,

	// Luminous intensity.
	"cd": DimLuminous,
	"cp": DimLuminous,
	"hk": DimLuminous,
}

// siPrefixableSymbols are the parser-level symbols that may carry an
// SI prefix letter. Grams rather than kilograms keep the prefix
// arithmetic consistent.
var siPrefixableSymbols = map[string]bool{
	"g":  true,
	"m":  true,
	"A":  true,
	"cd": true,
}

// DimensionOfSymbol looks up the base dimension for a unit symbol.
func DimensionOfSymbol(symbol string) (Dimension, bool) {
	dim, ok := symbolDimensions[symbol]
	return dim, ok
}
