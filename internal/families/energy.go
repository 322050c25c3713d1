package families

import "github.com/unital-labs/unital-cli/internal/core/domain"

// Energy returns the energy family. Multipliers are joules per unit.
// Electronvolts use the NIST standard conversion; BTU defaults to the
// ISO definition and the calorie to the thermochemical one.
func Energy() domain.Family {
	return domain.Family{
		Name:         "energy",
		StandardUnit: "J",
		Units: map[string]float64{
			"J":             1.0,
			"foot_pound":    1.355818,
			"foot_poundal":  0.0421401100938048,
			"watt_hour":     3600.0,
			"watt_min":      60.0,
			"eV":            1.6021766208e-19,
			"hartree":       4.359744650e-18,
			"erg":           1.0e-7,
			"tonne_tnt":     4.184e9,
			"therm_ec":      1.05506e8,
			"therm_us":      1.054804e8,
			"btu_iso":       1.05506e3,
			"btu_it":        1.05505585e3,
			"btu_th":        1.054350e3,
			"cal_th":        4.184,
			"cal_it":        4.1868,
			"cal_nutrition": 4184.0, // Thermochemical kcal, food labelling.
		},
		Aliases: map[string]string{
			"joule":        "J",
			"j":            "J",
			"ftlb":         "foot_pound",
			"ft-lb":        "foot_pound",
			"ft_lb":        "foot_pound",
			"ftlbf":        "foot_pound",
			"ft_pdl":       "foot_poundal",
			"watt_hr":      "watt_hour",
			"watt_h":       "watt_hour",
			"watt_minute":  "watt_min",
			"watt_sec":     "J",
			"watt_s":       "J",
			"ev":           "eV",
			"electronvolt": "eV",
			"ha":           "hartree",
			"btu":          "btu_iso",
			"BTU":          "btu_iso",
			"tnt":          "tonne_tnt",
			"ton_tnt":      "tonne_tnt",
			"cal":          "cal_th",
			"calorie":      "cal_th",
			"Calorie":      "cal_nutrition",
			"Cal":          "cal_nutrition",
		},
		SIPrefixable: []string{"J", "eV"},
	}
}
