package families

import "github.com/unital-labs/unital-cli/internal/core/domain"

// Distance returns the distance family. Multipliers are metres per
// unit; the survey and imperial entries follow the spellings used in
// spatial reference WKT.
func Distance() domain.Family {
	return domain.Family{
		Name:         "distance",
		StandardUnit: "m",
		Units: map[string]float64{
			"m":           1.0,
			"chain":       20.1168,
			"fathom":      1.8288,
			"ft":          0.3048,
			"inch":        0.0254,
			"link":        0.201168,
			"mi":          1609.344,
			"naut_mi":     1852,
			"naut_mi_uk":  1853.184,
			"rod":         5.029210,
			"survey_ft":   0.304800609601,
			"yd":          0.9144,
			"ly":          9.46073e15,
			"pc":          3.085678e16,
			"light_min":   1.799e10,
			"light_sec":   2.998e8,
			"ang":         1e-10,
			"au":          1.495979e11,
			"fermi":       1e-15,
			"german_m":    1.0000135965,
			"indian_yd":   0.914398530744,
			"clarke_ft":   0.3047972654,
			"clarke_link": 0.201166195164,
		},
		Aliases: map[string]string{
			"foot":                 "ft",
			"feet":                 "ft",
			"inches":               "inch",
			"in":                   "inch",
			"meter":                "m",
			"metre":                "m",
			"mile":                 "mi",
			"yard":                 "yd",
			"nautical mile":        "naut_mi",
			"nautical mile (uk)":   "naut_mi_uk",
			"us survey foot":       "survey_ft",
			"u.s. foot":            "survey_ft",
			"german legal metre":   "german_m",
			"indian yard":          "indian_yd",
			"clarke's foot":        "clarke_ft",
			"clarke's link":        "clarke_link",
			"foot (international)": "ft",
			"light year":           "ly",
			"light-year":           "ly",
			"l.y.":                 "ly",
			"parsec":               "pc",
			"light minute":         "light_min",
			"light-minute":         "light_min",
			"light second":         "light_sec",
			"light-second":         "light_sec",
			"angstrom":             "ang",
			"ångström":             "ang",
		},
		SIPrefixable: []string{"m"},
	}
}
