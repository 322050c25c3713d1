package families

import "github.com/unital-labs/unital-cli/internal/core/domain"

// Time returns the time family. Multipliers are seconds per unit.
func Time() domain.Family {
	return domain.Family{
		Name:         "time",
		StandardUnit: "s",
		Units: map[string]float64{
			"s":    1.0,
			"min":  60.0,
			"hr":   3600.0,
			"day":  86400.0,
			"week": 604800.0,
		},
		Aliases: map[string]string{
			"sec":     "s",
			"second":  "s",
			"seconds": "s",
			"minute":  "min",
			"minutes": "min",
			"h":       "hr",
			"hour":    "hr",
			"hours":   "hr",
			"d":       "day",
			"days":    "day",
			"wk":      "week",
		},
		SIPrefixable: []string{"s"},
	}
}

// Current returns the electric current family. Multipliers are
// amperes per unit.
func Current() domain.Family {
	return domain.Family{
		Name:         "current",
		StandardUnit: "A",
		Units: map[string]float64{
			"A": 1.0,
		},
		Aliases: map[string]string{
			"amp":     "A",
			"amps":    "A",
			"ampere":  "A",
			"amperes": "A",
		},
		SIPrefixable: []string{"A"},
	}
}

// Temperature returns the thermodynamic temperature family.
// Only the multiplier-ratio model is supported, so offset scales
// (celsius, fahrenheit) are limited to degree-size conversion.
func Temperature() domain.Family {
	return domain.Family{
		Name:         "temperature",
		StandardUnit: "K",
		Units: map[string]float64{
			"K":    1.0,
			"degR": 5.0 / 9.0, // Rankine degree size.
		},
		Aliases: map[string]string{
			"kelvin":  "K",
			"rankine": "degR",
		},
		SIPrefixable: []string{"K"},
	}
}

// Amount returns the amount-of-substance family. Multipliers are
// moles per unit.
func Amount() domain.Family {
	return domain.Family{
		Name:         "amount",
		StandardUnit: "mol",
		Units: map[string]float64{
			"mol": 1.0,
		},
		Aliases: map[string]string{
			"mole":  "mol",
			"moles": "mol",
		},
		SIPrefixable: []string{"mol"},
	}
}

// Luminous returns the luminous intensity family. Multipliers are
// candelas per unit.
func Luminous() domain.Family {
	return domain.Family{
		Name:         "luminous",
		StandardUnit: "cd",
		Units: map[string]float64{
			"cd": 1.0,
			"cp": 0.981, // Candlepower, pre-1948 definition.
			"hk": 0.920, // Hefnerkerze.
		},
		Aliases: map[string]string{
			"candela":     "cd",
			"candlepower": "cp",
			"hefner":      "hk",
		},
		SIPrefixable: []string{"cd"},
	}
}

// All returns every built-in family.
func All() []domain.Family {
	return []domain.Family{
		Mass(),
		Distance(),
		Time(),
		Current(),
		Temperature(),
		Amount(),
		Luminous(),
		Energy(),
		Volume(),
	}
}
