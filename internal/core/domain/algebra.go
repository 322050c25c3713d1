package domain

// Merge combines two term sequences under multiplication (sign +1)
// or division (sign -1). Every dimension present in either operand
// is visited exactly once; its resulting exponent is
// a.Exponent + sign*b.Exponent with a missing term counting as zero.
// The prefix is taken from a when a contributes the dimension,
// otherwise from b. The result is a fresh sequence; neither operand
// is modified. The result is not rectified.
func Merge(a, b TermSeq, sign float64) TermSeq {
	merged := make(TermSeq, 0, len(a)+len(b))

	for _, term := range a {
		exponent := term.Exponent
		if j := b.find(term.Dim); j >= 0 {
			exponent += sign * b[j].Exponent
		}
		merged = append(merged, Term{Dim: term.Dim, Exponent: exponent, Prefix: term.Prefix})
	}

	for _, term := range b {
		if a.find(term.Dim) >= 0 {
			continue // already merged above
		}
		merged = append(merged, Term{Dim: term.Dim, Exponent: sign * term.Exponent, Prefix: term.Prefix})
	}

	return merged
}

// Rectify normalises a term sequence: zero-exponent terms are
// dropped; if no positive-exponent term remains, a synthetic
// reciprocal term is appended so fractional rendering has a
// numerator; a reciprocal term coexisting with a genuine
// positive-exponent term is removed. Rectify is idempotent and
// returns a fresh sequence.
func Rectify(terms TermSeq) TermSeq {
	rectified := make(TermSeq, 0, len(terms))
	positives := 0

	for _, term := range terms {
		if term.Exponent == 0 {
			continue
		}
		if term.Dim == DimReciprocal {
			// Re-added below if still needed; dropped once a genuine
			// numerator exists.
			continue
		}
		if term.Exponent > 0 {
			positives++
		}
		rectified = append(rectified, term)
	}

	if positives == 0 {
		rectified = append(rectified, reciprocalTerm())
	}
	return rectified
}

// SameDimensions reports whether two sequences carry the same unit
// signature: equal cardinality and every (dimension, exponent) pair
// of b present verbatim in a. Prefixes do not participate.
func SameDimensions(a, b TermSeq) bool {
	if len(a) != len(b) {
		return false
	}
	for _, term := range b {
		i := a.find(term.Dim)
		if i < 0 || a[i].Exponent != term.Exponent {
			return false
		}
	}
	return true
}

// ScaleExponents multiplies every exponent by factor, as required by
// exponentiation. Non-integral factors produce non-integral exponents,
// carried without rounding. The result is a fresh, non-rectified
// sequence.
func ScaleExponents(terms TermSeq, factor float64) TermSeq {
	scaled := make(TermSeq, 0, len(terms))
	for _, term := range terms {
		scaled = append(scaled, Term{Dim: term.Dim, Exponent: term.Exponent * factor, Prefix: term.Prefix})
	}
	return scaled
}

// Normalize folds duplicate dimensions by summing their exponents
// (first prefix wins) and rectifies the result. Constructors use it
// to establish the one-term-per-dimension invariant on raw parser
// output such as "m*m".
func Normalize(terms TermSeq) TermSeq {
	folded := make(TermSeq, 0, len(terms))
	for _, term := range terms {
		if i := folded.find(term.Dim); i >= 0 {
			folded[i].Exponent += term.Exponent
			continue
		}
		folded = append(folded, term)
	}
	return Rectify(folded)
}
