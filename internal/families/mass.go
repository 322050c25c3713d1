package families

import "github.com/unital-labs/unital-cli/internal/core/domain"

// Mass returns the mass family. Multipliers are grams per unit;
// grams rather than kilograms keep the SI prefix expansion uniform.
func Mass() domain.Family {
	return domain.Family{
		Name:         "mass",
		StandardUnit: "g",
		Units: map[string]float64{
			"g":          1.0,
			"tonne":      1000000.0,
			"oz":         28.3495,
			"troy_oz":    31.10348, // Used for precious metals.
			"lb":         453.592,
			"short_ton":  907185.0,
			"long_ton":   1016000.0,
			"gr":         0.0647989,
			"stone":      6350.29, // 14 lb. Used in GB and Ireland for body mass.
			"carat":      0.2,     // Used for gemstones and jewels.
			"solar_mass": 2e33,
			"earth_mass": 5.9722e27,
		},
		Aliases: map[string]string{
			"mcg":          "ug",
			"μg":           "ug",
			"gram":         "g",
			"gm":           "g",
			"ton":          "short_ton",
			"short ton":    "short_ton",
			"metric tonne": "tonne",
			"metric ton":   "tonne",
			"ounce":        "oz",
			"pound":        "lb",
			"lbs":          "lb",
			"st":           "stone",
			"long ton":     "long_ton",
			"weight ton":   "long_ton",
			"imperial ton": "long_ton",
			"imp_ton":      "long_ton",
			"ct":           "carat",
			"sm":           "solar_mass",
			"suns":         "solar_mass",
			"em":           "earth_mass",
			"earths":       "earth_mass",
		},
		SIPrefixable: []string{"g"},
	}
}
