package families

import "github.com/unital-labs/unital-cli/internal/core/domain"

// Volume returns the volume family. Multipliers are cubic metres per
// unit. US and imperial measures are distinct entries; bare "gal",
// "qt" and friends alias the US definitions.
func Volume() domain.Family {
	return domain.Family{
		Name:         "volume",
		StandardUnit: "cubic_meter",
		Units: map[string]float64{
			"cubic_meter":      1.0,
			"cubic_centimeter": 0.000001,
			"cubic_millimeter": 0.000000001,
			"cubic_decimeter":  0.001,
			"cubic_foot":       0.0283168,
			"cubic_inch":       1.6387e-5,
			"l":                0.001,
			"us_gal":           0.00378541,
			"us_qt":            0.000946353,
			"us_pint":          0.000473176,
			"us_cup":           0.000236588,
			"us_floz":          2.9574e-5,
			"us_tbsp":          1.4787e-5,
			"us_tsp":           4.9289e-6,
			"imperial_gal":     0.00454609,
			"imperial_qt":      0.00113652,
			"imperial_pint":    0.000568261,
			"imperial_floz":    2.8413e-5,
			"imperial_tbsp":    1.7758e-5,
			"imperial_tsp":     5.9194e-6,
			"tonnage":          2.83168,
		},
		Aliases: map[string]string{
			"gallon":   "us_gal",
			"gal":      "us_gal",
			"quart":    "us_qt",
			"qt":       "us_qt",
			"pint":     "us_pint",
			"cup":      "us_cup",
			"floz":     "us_floz",
			"tbsp":     "us_tbsp",
			"tsp":      "us_tsp",
			"m3":       "cubic_meter",
			"cm3":      "cubic_centimeter",
			"mm3":      "cubic_millimeter",
			"dm3":      "cubic_decimeter",
			"ft3":      "cubic_foot",
			"in3":      "cubic_inch",
			"ml":       "cubic_centimeter",
			"liter":    "l",
			"litre":    "l",
			"imp_gal":  "imperial_gal",
			"imp_qt":   "imperial_qt",
			"imp_pint": "imperial_pint",
			"imp_oz":   "imperial_floz",
			"imp_tbsp": "imperial_tbsp",
			"imp_tsp":  "imperial_tsp",
			"tnge":     "tonnage",
		},
		SIPrefixable: []string{"l"},
	}
}
