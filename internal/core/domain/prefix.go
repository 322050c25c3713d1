package domain

// Prefix is an SI magnitude prefix attached to a unit symbol.
// The zero value PrefixNone means the symbol is unprefixed.
type Prefix string

// The twenty SI prefixes.
const (
	PrefixNone  Prefix = ""
	PrefixYocto Prefix = "yocto"
	PrefixZepto Prefix = "zepto"
	PrefixAtto  Prefix = "atto"
	PrefixFemto Prefix = "femto"
	PrefixPico  Prefix = "pico"
	PrefixNano  Prefix = "nano"
	PrefixMicro Prefix = "micro"
	PrefixMilli Prefix = "milli"
	PrefixCenti Prefix = "centi"
	PrefixDeci  Prefix = "deci"
	PrefixDeca  Prefix = "deca"
	PrefixHecto Prefix = "hecto"
	PrefixKilo  Prefix = "kilo"
	PrefixMega  Prefix = "mega"
	PrefixGiga  Prefix = "giga"
	PrefixTera  Prefix = "tera"
	PrefixPeta  Prefix = "peta"
	PrefixExa   Prefix = "exa"
	PrefixZetta Prefix = "zetta"
	PrefixYotta Prefix = "yotta"
)

// prefixMagnitudes maps each prefix to its decimal multiplier.
// Only the conversion resolver uses magnitudes; the algebra engine
// treats prefixed and unprefixed terms as interchangeable.
var prefixMagnitudes = map[Prefix]float64{
	PrefixYocto: 1e-24,
	PrefixZepto: 1e-21,
	PrefixAtto:  1e-18,
	PrefixFemto: 1e-15,
	PrefixPico:  1e-12,
	PrefixNano:  1e-9,
	PrefixMicro: 1e-6,
	PrefixMilli: 1e-3,
	PrefixCenti: 1e-2,
	PrefixDeci:  1e-1,
	PrefixDeca:  1e1,
	PrefixHecto: 1e2,
	PrefixKilo:  1e3,
	PrefixMega:  1e6,
	PrefixGiga:  1e9,
	PrefixTera:  1e12,
	PrefixPeta:  1e15,
	PrefixExa:   1e18,
	PrefixZetta: 1e21,
	PrefixYotta: 1e24,
	PrefixNone:  1,
}

// prefixSymbols maps each prefix to its symbol as written before a
// unit symbol (micro uses the ASCII "u").
var prefixSymbols = map[Prefix]string{
	PrefixYocto: "y",
	PrefixZepto: "z",
	PrefixAtto:  "a",
	PrefixFemto: "f",
	PrefixPico:  "p",
	PrefixNano:  "n",
	PrefixMicro: "u",
	PrefixMilli: "m",
	PrefixCenti: "c",
	PrefixDeci:  "d",
	PrefixDeca:  "da",
	PrefixHecto: "h",
	PrefixKilo:  "k",
	PrefixMega:  "M",
	PrefixGiga:  "G",
	PrefixTera:  "T",
	PrefixPeta:  "P",
	PrefixExa:   "E",
	PrefixZetta: "Z",
	PrefixYotta: "Y",
}

// symbolPrefixes is the inverse of prefixSymbols.
var symbolPrefixes map[string]Prefix

//nolint:gochecknoinits // Package-level static mapping initialization
func init() {
	symbolPrefixes = make(map[string]Prefix, len(prefixSymbols))
	for prefix, symbol := range prefixSymbols {
		symbolPrefixes[symbol] = prefix
	}
}

// AllPrefixes returns the twenty SI prefixes, excluding PrefixNone.
func AllPrefixes() []Prefix {
	prefixes := make([]Prefix, 0, len(prefixSymbols))
	for prefix := range prefixSymbols {
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

// Magnitude returns the decimal multiplier for the prefix.
// Unknown prefixes report 1 so a missing table entry cannot
// silently scale a conversion.
func (p Prefix) Magnitude() float64 {
	if mag, ok := prefixMagnitudes[p]; ok {
		return mag
	}
	return 1
}

// Symbol returns the prefix symbol ("k" for kilo). PrefixNone
// returns the empty string.
func (p Prefix) Symbol() string {
	return prefixSymbols[p]
}

// String returns the prefix name.
func (p Prefix) String() string {
	if p == PrefixNone {
		return "none"
	}
	return string(p)
}

// PrefixForSymbol resolves a prefix symbol ("k") to its Prefix.
func PrefixForSymbol(symbol string) (Prefix, bool) {
	prefix, ok := symbolPrefixes[symbol]
	return prefix, ok
}
