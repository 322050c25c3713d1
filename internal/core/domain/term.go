package domain

// Term is a single dimensional factor of a compound unit.
type Term struct {
	// Dim is the base dimension this factor contributes.
	Dim Dimension

	// Exponent is the power of the factor. Negative exponents place
	// the factor in the denominator. Non-integral exponents arise
	// from exponentiation and are carried without rounding.
	Exponent float64

	// Prefix is the SI prefix parsed with the symbol, if any.
	Prefix Prefix
}

// TermSeq is a sequence of unit terms. It is treated as an immutable
// value: every algebra operation returns a fresh sequence and never
// writes into an operand's backing array. Order is preserved for
// rendering but carries no algebraic meaning.
type TermSeq []Term

// NewTermSeq copies terms into a fresh sequence.
func NewTermSeq(terms ...Term) TermSeq {
	if len(terms) == 0 {
		return nil
	}
	seq := make(TermSeq, len(terms))
	copy(seq, terms)
	return seq
}

// Clone returns an independent copy of the sequence.
func (ts TermSeq) Clone() TermSeq {
	return NewTermSeq(ts...)
}

// Dimensions returns the dimensions present, in sequence order.
func (ts TermSeq) Dimensions() []Dimension {
	dims := make([]Dimension, 0, len(ts))
	for _, term := range ts {
		dims = append(dims, term.Dim)
	}
	return dims
}

// find returns the index of the term for dim, or -1.
func (ts TermSeq) find(dim Dimension) int {
	for i, term := range ts {
		if term.Dim == dim {
			return i
		}
	}
	return -1
}

// reciprocalTerm is the synthetic numerator inserted when no genuine
// positive-exponent term exists.
func reciprocalTerm() Term {
	return Term{Dim: DimReciprocal, Exponent: 1, Prefix: PrefixNone}
}
