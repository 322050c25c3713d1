package domain

import (
	"math"
	"strconv"
	"strings"
)

// FractionalString renders a term sequence in fractional notation:
// positive-exponent terms joined by "*" form the numerator, negated
// terms (rendered with their absolute exponent) form the denominator.
// A sequence whose only numerator is the synthetic reciprocal term
// renders as "1". The output is always "numerator/denominator", so a
// unit with no denominator ends in a slash ("m/").
func FractionalString(terms TermSeq) string {
	var numerator, denominator []string

	for _, term := range terms {
		if term.Dim == DimReciprocal {
			numerator = append(numerator, "1")
			continue
		}

		rendered := renderTerm(term.Dim.Symbol(), math.Abs(term.Exponent))
		switch {
		case term.Exponent > 0:
			numerator = append(numerator, rendered)
		case term.Exponent < 0:
			denominator = append(denominator, rendered)
		}
	}

	return strings.Join(numerator, "*") + "/" + strings.Join(denominator, "*")
}

// ExponentialString renders every nonzero-exponent term with an
// explicit signed exponent joined by "*" ("kg^3*m^-1*s^-1").
// Exponent 1 renders as the bare symbol. The reciprocal term is
// rendered like any other, with symbol "1".
func ExponentialString(terms TermSeq) string {
	rendered := make([]string, 0, len(terms))
	for _, term := range terms {
		if term.Exponent == 0 {
			continue
		}
		rendered = append(rendered, renderTerm(term.Dim.Symbol(), term.Exponent))
	}
	return strings.Join(rendered, "*")
}

// renderTerm formats one symbol with its exponent; exponent 1 gives
// the bare symbol.
func renderTerm(symbol string, exponent float64) string {
	if exponent == 1 {
		return symbol
	}
	return symbol + "^" + formatExponent(exponent)
}

// formatExponent writes integral exponents without a decimal point
// so parsed units round-trip through text.
func formatExponent(exponent float64) string {
	if exponent == float64(int64(exponent)) {
		return strconv.FormatInt(int64(exponent), 10)
	}
	return strconv.FormatFloat(exponent, 'g', -1, 64)
}
