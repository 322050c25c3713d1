package domain

import "fmt"

// Family is one physical-quantity category (mass, distance, ...) with
// its conversion tables. The engine consumes families through this
// contract; the built-in tables live in internal/families and custom
// families can be loaded from file.
type Family struct {
	// Name identifies the family ("mass").
	Name string

	// StandardUnit is the name every multiplier is relative to.
	StandardUnit string

	// Units maps a unit name to its multiplier relative to the
	// standard unit.
	Units map[string]float64

	// Aliases maps alternate spellings to canonical unit names.
	Aliases map[string]string

	// SIPrefixable lists the unit names that accept SI prefixes.
	SIPrefixable []string
}

// Validate checks the family tables are internally consistent.
func (f Family) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: family name is empty", ErrConversion)
	}
	if _, ok := f.Units[f.StandardUnit]; !ok {
		return fmt.Errorf("%w: standard unit %q missing from unit table of family %q",
			ErrConversion, f.StandardUnit, f.Name)
	}
	for _, name := range f.SIPrefixable {
		if _, ok := f.Units[name]; !ok {
			return fmt.Errorf("%w: SI-prefixable unit %q missing from unit table of family %q",
				ErrConversion, name, f.Name)
		}
	}
	return nil
}

// ExpandedUnits returns the unit table with twenty SI-prefixed
// variants added for every prefixable unit ("kg" = units["g"] * 1e3).
func (f Family) ExpandedUnits() map[string]float64 {
	expanded := make(map[string]float64, len(f.Units)+len(f.SIPrefixable)*len(prefixSymbols))
	for name, multiplier := range f.Units {
		expanded[name] = multiplier
	}
	for _, name := range f.SIPrefixable {
		base, ok := f.Units[name]
		if !ok {
			continue
		}
		for prefix, symbol := range prefixSymbols {
			expanded[symbol+name] = base * prefix.Magnitude()
		}
	}
	return expanded
}

// ExpandedAliases returns the alias table with prefixed spellings
// added for every alias of an SI-prefixable unit ("milligram" ->
// "mg").
func (f Family) ExpandedAliases() map[string]string {
	prefixable := make(map[string]bool, len(f.SIPrefixable))
	for _, name := range f.SIPrefixable {
		prefixable[name] = true
	}

	expanded := make(map[string]string, len(f.Aliases))
	for alias, canonical := range f.Aliases {
		expanded[alias] = canonical
		if !prefixable[canonical] {
			continue
		}
		for prefix, symbol := range prefixSymbols {
			expanded[string(prefix)+alias] = symbol + canonical
		}
	}
	return expanded
}

// Convert converts a scalar from one named unit of the family to
// another. Identical names short-circuit without any table lookup.
// Names resolve through the expanded alias table when present, then
// both multipliers are looked up in the expanded unit table; an
// unknown name on either side fails.
func (f Family) Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}

	units := f.ExpandedUnits()
	aliases := f.ExpandedAliases()

	fromName := resolveAlias(aliases, from)
	toName := resolveAlias(aliases, to)

	fromMultiplier, ok := units[fromName]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrConversion, from, f.Name)
	}
	toMultiplier, ok := units[toName]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrConversion, to, f.Name)
	}

	return value * (toMultiplier / fromMultiplier), nil
}

// Knows reports whether name resolves to a unit of this family.
func (f Family) Knows(name string) bool {
	units := f.ExpandedUnits()
	_, ok := units[resolveAlias(f.ExpandedAliases(), name)]
	return ok
}

// resolveAlias maps an alias to its canonical name; unaliased names
// resolve to themselves.
func resolveAlias(aliases map[string]string, name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}
