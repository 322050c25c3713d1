package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// groupingStripper removes the cosmetic grouping characters permitted
// in unit expressions. Grouping never nests sub-expressions.
var groupingStripper = strings.NewReplacer(
	"(", "", ")", "",
	"[", "", "]", "",
	"{", "", "}", "",
)

// ParseUnits converts a textual unit expression into a raw term
// sequence. Both fractional ("kg^3/m*s") and exponential
// ("kg^3*m^-1*s^-1") notations are accepted. The result preserves
// encounter order and is not rectified; callers normalise through
// the algebra functions.
func ParseUnits(text string) (TermSeq, error) {
	stripped := groupingStripper.Replace(text)

	segments := strings.Split(stripped, "/")
	if len(segments) > 2 {
		return nil, fmt.Errorf("%w: more than one divisor in %q", ErrParse, text)
	}

	terms, err := parseSegment(segments[0], 1)
	if err != nil {
		return nil, err
	}

	if len(segments) == 2 {
		denom, err := parseSegment(segments[1], -1)
		if err != nil {
			return nil, err
		}
		terms = append(terms, denom...)
	}

	return terms, nil
}

// parseSegment parses one side of the divisor. sign is +1 for the
// numerator and -1 for the denominator.
func parseSegment(segment string, sign float64) (TermSeq, error) {
	tokens := strings.Split(segment, "*")
	terms := make(TermSeq, 0, len(tokens))

	for _, token := range tokens {
		term, err := parseToken(token, sign)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return terms, nil
}

// parseToken parses one SYMBOL[^EXPONENT] token.
func parseToken(token string, sign float64) (Term, error) {
	symbol := token
	exponent := 1

	if idx := strings.IndexByte(token, '^'); idx >= 0 {
		symbol = token[:idx]
		raw := token[idx+1:]
		if raw == "" {
			return Term{}, fmt.Errorf("%w: %q has '^' but no exponent", ErrParse, token)
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Term{}, fmt.Errorf("%w: exponent %q must be a signed integer", ErrParse, raw)
		}
		exponent = parsed
	}

	if symbol == "1" {
		// A pure-reciprocal numerator must stand alone.
		if symbol != token || sign < 0 {
			return Term{}, fmt.Errorf("%w: '1' must be alone in the numerator of a reciprocal unit", ErrParse)
		}
		return Term{Dim: DimReciprocal, Exponent: sign, Prefix: PrefixNone}, nil
	}

	if !isAlpha(symbol) {
		return Term{}, fmt.Errorf("%w: digits are only allowed in exponents, got %q", ErrParse, symbol)
	}

	trimmed, prefix, err := splitPrefix(symbol)
	if err != nil {
		return Term{}, err
	}

	dim, ok := DimensionOfSymbol(trimmed)
	if !ok {
		return Term{}, fmt.Errorf("%w: unknown unit symbol %q", ErrParse, symbol)
	}

	return Term{Dim: dim, Exponent: sign * float64(exponent), Prefix: prefix}, nil
}

// splitPrefix separates a leading SI prefix letter from a symbol.
// The leading character is a prefix only when the remainder is an
// SI-prefixable symbol and the full token is not itself a valid
// symbol ("cm" is centi-metre, but "cd" stays candela).
func splitPrefix(symbol string) (string, Prefix, error) {
	if _, standalone := DimensionOfSymbol(symbol); standalone {
		return symbol, PrefixNone, nil
	}

	if len(symbol) < 2 {
		return "", PrefixNone, fmt.Errorf("%w: unknown unit symbol %q", ErrParse, symbol)
	}

	trimmed := symbol[1:]
	if !siPrefixableSymbols[trimmed] {
		return "", PrefixNone, fmt.Errorf("%w: unknown unit symbol %q", ErrParse, symbol)
	}

	prefix, ok := PrefixForSymbol(symbol[:1])
	if !ok {
		return "", PrefixNone, fmt.Errorf("%w: unknown SI prefix %q in %q", ErrParse, symbol[:1], symbol)
	}

	return trimmed, prefix, nil
}

// isAlpha reports whether s is non-empty ASCII letters only.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
