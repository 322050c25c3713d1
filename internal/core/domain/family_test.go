package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMassFamily() Family {
	return Family{
		Name:         "mass",
		StandardUnit: "g",
		Units: map[string]float64{
			"g":     1.0,
			"oz":    28.3495,
			"lb":    453.592,
			"tonne": 1000000.0,
		},
		Aliases: map[string]string{
			"gram":   "g",
			"ounce":  "oz",
			"pound":  "lb",
			"lbs":    "lb",
			"gs":     "g",
			"mcg":    "ug",
			"metric": "tonne",
		},
		SIPrefixable: []string{"g"},
	}
}

func TestFamily_Validate(t *testing.T) {
	tests := []struct {
		name    string
		family  Family
		wantErr bool
	}{
		{"valid", testMassFamily(), false},
		{
			name:    "empty name",
			family:  Family{StandardUnit: "g", Units: map[string]float64{"g": 1}},
			wantErr: true,
		},
		{
			name:    "standard unit missing from table",
			family:  Family{Name: "mass", StandardUnit: "g", Units: map[string]float64{"oz": 28.3}},
			wantErr: true,
		},
		{
			name: "prefixable unit missing from table",
			family: Family{
				Name:         "mass",
				StandardUnit: "g",
				Units:        map[string]float64{"g": 1},
				SIPrefixable: []string{"t"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.family.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFamily_ExpandedUnits(t *testing.T) {
	family := testMassFamily()

	units := family.ExpandedUnits()

	// 4 base entries plus 20 prefixed variants of "g".
	assert.Len(t, units, 4+20)
	assert.Equal(t, 1.0, units["g"])
	assert.Equal(t, 1e3, units["kg"])
	assert.Equal(t, 1e-3, units["mg"])
	assert.Equal(t, 1e-6, units["ug"])
	assert.Equal(t, 1e24, units["Yg"])
	assert.Equal(t, 1e-24, units["yg"])
	assert.Equal(t, 28.3495, units["oz"])

	// Non-prefixable entries gain no variants.
	_, ok := units["koz"]
	assert.False(t, ok)
}

func TestFamily_ExpandedAliases(t *testing.T) {
	family := testMassFamily()

	aliases := family.ExpandedAliases()

	assert.Equal(t, "g", aliases["gram"])
	assert.Equal(t, "kg", aliases["kilogram"])
	assert.Equal(t, "mg", aliases["milligram"])
	assert.Equal(t, "ug", aliases["microgram"])

	// Aliases of non-prefixable units are not expanded.
	assert.Equal(t, "lb", aliases["pound"])
	_, ok := aliases["kilopound"]
	assert.False(t, ok)
}

func TestFamily_Convert(t *testing.T) {
	family := testMassFamily()

	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
	}{
		{"identity short circuit", 12.5, "oz", "oz", 12.5},
		{"multiplier ratio", 10, "kg", "g", 10 * (1.0 / 1000.0)},
		{"reverse ratio", 10, "g", "kg", 10 * (1000.0 / 1.0)},
		{"through aliases", 2, "pound", "ounce", 2 * (28.3495 / 453.592)},
		{"prefixed alias", 3, "kilogram", "gram", 3 * (1.0 / 1000.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := family.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFamily_Convert_IdentityNeedsNoTable(t *testing.T) {
	// Identical names return unchanged even when unknown to the
	// family.
	family := testMassFamily()

	got, err := family.Convert(7, "wug", "wug")

	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestFamily_Convert_UnknownUnits(t *testing.T) {
	family := testMassFamily()

	_, err := family.Convert(1, "wug", "g")
	assert.ErrorIs(t, err, ErrConversion)

	_, err = family.Convert(1, "g", "wug")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestFamily_Knows(t *testing.T) {
	family := testMassFamily()

	assert.True(t, family.Knows("g"))
	assert.True(t, family.Knows("kg"))
	assert.True(t, family.Knows("pound"))
	assert.True(t, family.Knows("milligram"))
	assert.False(t, family.Knows("m"))
	assert.False(t, family.Knows("wug"))
}
