package domain

import (
	"fmt"
	"math"
)

// Quantity is a numeric value carrying a compound unit. Arithmetic
// enforces dimensional consistency: addition requires identical unit
// signatures, multiplication and division merge them, and comparisons
// between incompatible quantities are false rather than errors.
//
// The non-assigning operations construct a new Quantity and leave the
// receiver untouched; the *Assign variants mutate the receiver. The
// term sequence of a result is never shared with an operand.
type Quantity struct {
	value float64
	units TermSeq
	mode  DisplayMode

	// implicitDimensionless permits bare scalars in multiplication
	// and division. It is fixed at construction; there is no
	// process-wide toggle.
	implicitDimensionless bool
}

// QuantityOption configures a Quantity at construction.
type QuantityOption func(*Quantity)

// WithDisplayMode selects fractional or exponential rendering.
func WithDisplayMode(mode DisplayMode) QuantityOption {
	return func(q *Quantity) {
		if mode.IsValid() {
			q.mode = mode
		}
	}
}

// WithImplicitDimensionless permits bare scalars to multiply or
// divide this quantity.
func WithImplicitDimensionless(allow bool) QuantityOption {
	return func(q *Quantity) {
		q.implicitDimensionless = allow
	}
}

// NewQuantity builds a quantity from a numeric scalar and a textual
// unit expression. The expression is parsed and normalised.
func NewQuantity(value any, unitText string, opts ...QuantityOption) (*Quantity, error) {
	terms, err := ParseUnits(unitText)
	if err != nil {
		return nil, err
	}
	return NewQuantityFromTerms(value, terms, opts...)
}

// NewQuantityFromTerms builds a quantity from a numeric scalar and an
// existing term sequence. The sequence is copied and normalised, so
// the caller's slice is never aliased.
func NewQuantityFromTerms(value any, terms TermSeq, opts ...QuantityOption) (*Quantity, error) {
	scalar, err := scalarValue(value)
	if err != nil {
		return nil, err
	}

	q := &Quantity{
		value: scalar,
		units: Normalize(terms),
		mode:  DisplayFractional,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// scalarValue validates a constructor value.
func scalarValue(value any) (float64, error) {
	op := classifyOperand(value)
	switch op.kind {
	case operandScalar:
		return op.scalar, nil
	case operandComplex:
		return 0, fmt.Errorf("%w: complex values", ErrNotSupported)
	default:
		return 0, fmt.Errorf("%w: value must be a plain numeric scalar, got %T", ErrNotSupported, value)
	}
}

// Value returns the numeric value.
func (q *Quantity) Value() float64 {
	return q.value
}

// Int returns the value truncated to an integer.
func (q *Quantity) Int() int {
	return int(q.value)
}

// Float returns the value as a float64.
func (q *Quantity) Float() float64 {
	return q.value
}

// IsZero reports whether the value is zero.
func (q *Quantity) IsZero() bool {
	return q.value == 0
}

// Units returns a copy of the normalised term sequence.
func (q *Quantity) Units() TermSeq {
	return q.units.Clone()
}

// DisplayMode returns the rendering mode.
func (q *Quantity) DisplayMode() DisplayMode {
	return q.mode
}

// SetDisplayMode changes the rendering mode. Invalid modes are
// ignored.
func (q *Quantity) SetDisplayMode(mode DisplayMode) {
	if mode.IsValid() {
		q.mode = mode
	}
}

// UnitString renders the units in the quantity's display mode.
func (q *Quantity) UnitString() string {
	if q.mode == DisplayExponential {
		return ExponentialString(q.units)
	}
	return FractionalString(q.units)
}

// String renders "<value> <units>".
func (q *Quantity) String() string {
	return fmt.Sprintf("%v %s", q.value, q.UnitString())
}

// derive builds a result quantity inheriting the receiver's display
// mode and scalar policy.
func (q *Quantity) derive(value float64, units TermSeq) *Quantity {
	return &Quantity{
		value:                 value,
		units:                 units,
		mode:                  q.mode,
		implicitDimensionless: q.implicitDimensionless,
	}
}

// Add returns q + other. The operand must be a quantity with the same
// unit signature; a bare scalar is always rejected.
func (q *Quantity) Add(other any) (*Quantity, error) {
	return q.addSub(other, 1)
}

// Sub returns q - other under the same rules as Add.
func (q *Quantity) Sub(other any) (*Quantity, error) {
	return q.addSub(other, -1)
}

func (q *Quantity) addSub(other any, sign float64) (*Quantity, error) {
	op := classifyOperand(other)
	switch op.kind {
	case operandQuantity:
		if !SameDimensions(q.units, op.quantity.units) {
			return nil, fmt.Errorf("%w: %s and %s", ErrUnitMismatch,
				FractionalString(q.units), FractionalString(op.quantity.units))
		}
		return q.derive(q.value+sign*op.quantity.value, q.units.Clone()), nil
	case operandScalar:
		return nil, fmt.Errorf("%w: cannot add a dimensionless value to a value with units", ErrUnitlessNumber)
	case operandComplex:
		return nil, fmt.Errorf("%w: complex values", ErrNotSupported)
	default:
		return nil, fmt.Errorf("%w: operand type %T", ErrNotSupported, other)
	}
}

// Mul returns q * other. Quantity operands combine units through
// Merge and Rectify; a bare scalar is permitted only when the
// quantity was constructed with WithImplicitDimensionless.
func (q *Quantity) Mul(other any) (*Quantity, error) {
	return q.mulDiv(other, mulOp)
}

// Div returns q / other under the same rules as Mul.
func (q *Quantity) Div(other any) (*Quantity, error) {
	return q.mulDiv(other, divOp)
}

// FloorDiv returns the floor of q / other under the same rules as
// Div.
func (q *Quantity) FloorDiv(other any) (*Quantity, error) {
	return q.mulDiv(other, floorDivOp)
}

type mulDivOp int

const (
	mulOp mulDivOp = iota
	divOp
	floorDivOp
)

func (op mulDivOp) apply(a, b float64) float64 {
	switch op {
	case mulOp:
		return a * b
	case divOp:
		return a / b
	default:
		return math.Floor(a / b)
	}
}

func (op mulDivOp) sign() float64 {
	if op == mulOp {
		return 1
	}
	return -1
}

func (q *Quantity) mulDiv(other any, op mulDivOp) (*Quantity, error) {
	operand := classifyOperand(other)
	switch operand.kind {
	case operandQuantity:
		units := Rectify(Merge(q.units, operand.quantity.units, op.sign()))
		return q.derive(op.apply(q.value, operand.quantity.value), units), nil
	case operandScalar:
		if !q.implicitDimensionless {
			return nil, fmt.Errorf("%w: declare the scalar dimensionless or construct the quantity with WithImplicitDimensionless", ErrUnitlessNumber)
		}
		return q.derive(op.apply(q.value, operand.scalar), q.units.Clone()), nil
	case operandComplex:
		return nil, fmt.Errorf("%w: complex values", ErrNotSupported)
	default:
		return nil, fmt.Errorf("%w: operand type %T", ErrNotSupported, other)
	}
}

// Pow raises the quantity to a scalar power. Term exponents are
// scaled by the power, which may be non-integral. Complex exponents
// are rejected.
func (q *Quantity) Pow(power any) (*Quantity, error) {
	op := classifyOperand(power)
	switch op.kind {
	case operandScalar:
		units := Rectify(ScaleExponents(q.units, op.scalar))
		return q.derive(math.Pow(q.value, op.scalar), units), nil
	case operandComplex:
		return nil, fmt.Errorf("%w: complex exponents", ErrNotSupported)
	default:
		return nil, fmt.Errorf("%w: exponent must be a plain numeric scalar", ErrNotSupported)
	}
}

// Mod is not part of the unit algebra.
func (q *Quantity) Mod(any) (*Quantity, error) {
	return nil, fmt.Errorf("%w: modulo", ErrNotSupported)
}

// DivMod is not part of the unit algebra.
func (q *Quantity) DivMod(any) (*Quantity, *Quantity, error) {
	return nil, nil, fmt.Errorf("%w: divmod", ErrNotSupported)
}

// In-place variants. Each applies the matching operation and mutates
// the receiver's value and units instead of constructing a result.

// AddAssign sets q = q + other.
func (q *Quantity) AddAssign(other any) error { return q.assign(q.Add(other)) }

// SubAssign sets q = q - other.
func (q *Quantity) SubAssign(other any) error { return q.assign(q.Sub(other)) }

// MulAssign sets q = q * other.
func (q *Quantity) MulAssign(other any) error { return q.assign(q.Mul(other)) }

// DivAssign sets q = q / other.
func (q *Quantity) DivAssign(other any) error { return q.assign(q.Div(other)) }

// FloorDivAssign sets q = floor(q / other).
func (q *Quantity) FloorDivAssign(other any) error { return q.assign(q.FloorDiv(other)) }

// PowAssign sets q = q ** power.
func (q *Quantity) PowAssign(power any) error { return q.assign(q.Pow(power)) }

func (q *Quantity) assign(result *Quantity, err error) error {
	if err != nil {
		return err
	}
	q.value = result.value
	q.units = result.units
	return nil
}

// Unary operations transform the value and leave the units unchanged.

// Neg returns -q.
func (q *Quantity) Neg() *Quantity {
	return q.derive(-q.value, q.units.Clone())
}

// Abs returns |q|.
func (q *Quantity) Abs() *Quantity {
	return q.derive(math.Abs(q.value), q.units.Clone())
}

// Round returns q with the value rounded to places decimal places.
func (q *Quantity) Round(places int) *Quantity {
	shift := math.Pow(10, float64(places))
	return q.derive(math.Round(q.value*shift)/shift, q.units.Clone())
}

// Trunc returns q with the value truncated toward zero.
func (q *Quantity) Trunc() *Quantity {
	return q.derive(math.Trunc(q.value), q.units.Clone())
}

// Floor returns q with the value rounded down.
func (q *Quantity) Floor() *Quantity {
	return q.derive(math.Floor(q.value), q.units.Clone())
}

// Ceil returns q with the value rounded up.
func (q *Quantity) Ceil() *Quantity {
	return q.derive(math.Ceil(q.value), q.units.Clone())
}

// Comparisons. A mismatched operand type or unit signature yields
// false rather than an error so quantities sort and filter safely in
// generic code.

// Less reports q < other.
func (q *Quantity) Less(other any) bool {
	if rhs, ok := q.comparableWith(other); ok {
		return q.value < rhs.value
	}
	return false
}

// LessEqual reports q <= other.
func (q *Quantity) LessEqual(other any) bool {
	if rhs, ok := q.comparableWith(other); ok {
		return q.value <= rhs.value
	}
	return false
}

// Equal reports q == other.
func (q *Quantity) Equal(other any) bool {
	if rhs, ok := q.comparableWith(other); ok {
		return q.value == rhs.value
	}
	return false
}

func (q *Quantity) comparableWith(other any) (*Quantity, bool) {
	op := classifyOperand(other)
	if op.kind != operandQuantity {
		return nil, false
	}
	if !SameDimensions(q.units, op.quantity.units) {
		return nil, false
	}
	return op.quantity, true
}
