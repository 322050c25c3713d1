package domain

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, value any, unit string, opts ...QuantityOption) *Quantity {
	t.Helper()
	q, err := NewQuantity(value, unit, opts...)
	require.NoError(t, err)
	return q
}

func TestNewQuantity(t *testing.T) {
	q := mustQuantity(t, 10, "kg^3/m*s")

	assert.Equal(t, 10.0, q.Value())
	assert.Equal(t, "kg^3/m*s", q.UnitString())
	assert.Equal(t, DisplayFractional, q.DisplayMode())
}

func TestNewQuantity_ParseFailure(t *testing.T) {
	_, err := NewQuantity(1, "kg/m/s")

	assert.ErrorIs(t, err, ErrParse)
}

func TestNewQuantity_RejectsComplexValue(t *testing.T) {
	_, err := NewQuantity(complex(1, 2), "m")

	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestNewQuantity_RejectsNonNumericValue(t *testing.T) {
	_, err := NewQuantity("ten", "m")

	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestNewQuantityFromTerms_DoesNotAliasCallerSlice(t *testing.T) {
	terms := TermSeq{{Dim: DimLength, Exponent: 1}}
	q, err := NewQuantityFromTerms(1, terms)
	require.NoError(t, err)

	terms[0].Exponent = 42

	assert.Equal(t, 1.0, q.Units()[0].Exponent)
}

// TestQuantity_Add tests the worked addition example
func TestQuantity_Add(t *testing.T) {
	q1 := mustQuantity(t, 10, "kg^3/m*s")
	q2 := mustQuantity(t, 25.5, "kg^3/m*s")

	sum, err := q1.Add(q2)

	require.NoError(t, err)
	assert.Equal(t, 35.5, sum.Value())
	assert.Equal(t, "kg^3/m*s", FractionalString(sum.Units()))
	assert.Equal(t, "kg^3*m^-1*s^-1", ExponentialString(sum.Units()))
}

func TestQuantity_Sub(t *testing.T) {
	q1 := mustQuantity(t, 10, "kg^3/m*s")
	q2 := mustQuantity(t, 25.5, "kg^3/m*s")

	diff, err := q1.Sub(q2)

	require.NoError(t, err)
	assert.Equal(t, -15.5, diff.Value())
	assert.Equal(t, "kg^3/m*s", FractionalString(diff.Units()))
}

// TestQuantity_Add_Mismatch tests the worked mismatch example
func TestQuantity_Add_Mismatch(t *testing.T) {
	metres := mustQuantity(t, 1, "m")
	seconds := mustQuantity(t, 1, "s")

	_, err := metres.Add(seconds)
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = metres.Add(5)
	assert.ErrorIs(t, err, ErrUnitlessNumber)

	_, err = metres.Sub(5.0)
	assert.ErrorIs(t, err, ErrUnitlessNumber)
}

// TestQuantity_Mul_Cancellation tests the worked multiplication
// example: the length dimension cancels and is dropped
func TestQuantity_Mul_Cancellation(t *testing.T) {
	density := mustQuantity(t, 10, "kg/m^3")
	flow := mustQuantity(t, 25.5, "m^3/s")

	product, err := density.Mul(flow)

	require.NoError(t, err)
	assert.Equal(t, 255.0, product.Value())
	assert.Equal(t, "kg/s", FractionalString(product.Units()))
}

// TestQuantity_Div_AccumulatesNegativeExponents tests the worked
// division example
func TestQuantity_Div_AccumulatesNegativeExponents(t *testing.T) {
	density := mustQuantity(t, 10, "kg/m^3")
	flow := mustQuantity(t, 25.5, "m^3/s")

	quotient, err := density.Div(flow)

	require.NoError(t, err)
	assert.InDelta(t, 0.3922, quotient.Value(), 1e-4)
	assert.Equal(t, "kg*s/m^6", FractionalString(quotient.Units()))
}

func TestQuantity_FloorDiv(t *testing.T) {
	density := mustQuantity(t, 10, "kg/m^3")
	flow := mustQuantity(t, 25.5, "m^3/s")

	quotient, err := density.FloorDiv(flow)

	require.NoError(t, err)
	assert.Equal(t, 0.0, quotient.Value())
	assert.Equal(t, "kg*s/m^6", FractionalString(quotient.Units()))
}

func TestQuantity_Mul_ScalarPolicy(t *testing.T) {
	strict := mustQuantity(t, 10, "m")
	_, err := strict.Mul(3)
	assert.ErrorIs(t, err, ErrUnitlessNumber)

	permissive := mustQuantity(t, 10, "m", WithImplicitDimensionless(true))
	product, err := permissive.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, 30.0, product.Value())
	assert.Equal(t, "m/", FractionalString(product.Units()))

	quotient, err := permissive.Div(4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, quotient.Value())
}

func TestQuantity_Mul_RejectsComplexAndUnsupported(t *testing.T) {
	q := mustQuantity(t, 10, "m")

	_, err := q.Mul(complex(1, 1))
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = q.Div("three")
	assert.ErrorIs(t, err, ErrNotSupported)
}

// TestQuantity_Mul_FullCancellation verifies a fully cancelled unit
// becomes a pure reciprocal-free dimensionless signature
func TestQuantity_Mul_FullCancellation(t *testing.T) {
	speed := mustQuantity(t, 4, "m/s")
	pace := mustQuantity(t, 2, "s/m")

	product, err := speed.Mul(pace)

	require.NoError(t, err)
	assert.Equal(t, 8.0, product.Value())
	assert.Equal(t, "1/", FractionalString(product.Units()))
}

func TestQuantity_Pow(t *testing.T) {
	q := mustQuantity(t, 3, "m/s")

	squared, err := q.Pow(2)

	require.NoError(t, err)
	assert.Equal(t, 9.0, squared.Value())
	assert.Equal(t, "m^2/s^2", FractionalString(squared.Units()))
}

func TestQuantity_Pow_FractionalExponent(t *testing.T) {
	q := mustQuantity(t, 16, "m^2")

	root, err := q.Pow(0.5)

	require.NoError(t, err)
	assert.Equal(t, 4.0, root.Value())
	assert.Equal(t, "m", ExponentialString(root.Units()))
}

func TestQuantity_Pow_ZeroDropsUnits(t *testing.T) {
	q := mustQuantity(t, 7, "m/s")

	unity, err := q.Pow(0)

	require.NoError(t, err)
	assert.Equal(t, 1.0, unity.Value())
	assert.Equal(t, "1/", FractionalString(unity.Units()))
}

func TestQuantity_Pow_RejectsComplexAndQuantity(t *testing.T) {
	q := mustQuantity(t, 2, "m")

	_, err := q.Pow(complex(2, 0))
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = q.Pow(mustQuantity(t, 2, "s"))
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestQuantity_ModAndDivMod(t *testing.T) {
	q := mustQuantity(t, 10, "m")

	_, err := q.Mod(3)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, _, err = q.DivMod(3)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestQuantity_InPlace(t *testing.T) {
	q := mustQuantity(t, 10, "kg/m^3")
	flow := mustQuantity(t, 25.5, "m^3/s")

	require.NoError(t, q.MulAssign(flow))
	assert.Equal(t, 255.0, q.Value())
	assert.Equal(t, "kg/s", FractionalString(q.Units()))

	other := mustQuantity(t, 45, "kg/s")
	require.NoError(t, q.AddAssign(other))
	assert.Equal(t, 300.0, q.Value())

	require.NoError(t, q.SubAssign(other))
	assert.Equal(t, 255.0, q.Value())

	require.NoError(t, q.PowAssign(2))
	assert.Equal(t, 65025.0, q.Value())
	assert.Equal(t, "kg^2/s^2", FractionalString(q.Units()))
}

func TestQuantity_InPlace_FailureLeavesReceiverUntouched(t *testing.T) {
	q := mustQuantity(t, 10, "m")

	err := q.AddAssign(mustQuantity(t, 2, "s"))

	assert.ErrorIs(t, err, ErrUnitMismatch)
	assert.Equal(t, 10.0, q.Value())
	assert.Equal(t, "m/", FractionalString(q.Units()))
}

func TestQuantity_Unary(t *testing.T) {
	q := mustQuantity(t, -2.7, "m/s")

	assert.Equal(t, 2.7, q.Neg().Value())
	assert.Equal(t, 2.7, q.Abs().Value())
	assert.Equal(t, -2.0, q.Trunc().Value())
	assert.Equal(t, -3.0, q.Floor().Value())
	assert.Equal(t, -2.0, q.Ceil().Value())
	assert.Equal(t, -2.70, q.Round(1).Value())
	assert.Equal(t, -3.0, q.Round(0).Value())

	// Units are untouched by unary operations.
	assert.Equal(t, "m/s", FractionalString(q.Neg().Units()))
	assert.Equal(t, -2.7, q.Value())
}

func TestQuantity_Round(t *testing.T) {
	q := mustQuantity(t, 3.14159, "m")

	assert.InDelta(t, 3.14, q.Round(2).Value(), 1e-9)
	assert.InDelta(t, 3.142, q.Round(3).Value(), 1e-9)
}

// TestQuantity_Comparisons tests the worked comparison-safety example
func TestQuantity_Comparisons(t *testing.T) {
	small := mustQuantity(t, 1, "m")
	large := mustQuantity(t, 2, "m")
	seconds := mustQuantity(t, 1, "s")

	assert.True(t, small.Less(large))
	assert.True(t, small.LessEqual(large))
	assert.True(t, small.LessEqual(mustQuantity(t, 1, "m")))
	assert.True(t, small.Equal(mustQuantity(t, 1, "m")))
	assert.False(t, large.Less(small))

	// Mismatched units compare false, never error.
	assert.False(t, small.Less(seconds))
	assert.False(t, small.LessEqual(seconds))
	assert.False(t, small.Equal(seconds))

	// Non-quantity operands compare false.
	assert.False(t, small.Less(5))
	assert.False(t, small.Equal(1.0))
	assert.False(t, small.Equal("1 m"))
}

// TestQuantity_SortsSafely verifies comparison semantics compose with
// generic sorting
func TestQuantity_SortsSafely(t *testing.T) {
	quantities := []*Quantity{
		mustQuantity(t, 3, "m"),
		mustQuantity(t, 1, "m"),
		mustQuantity(t, 2, "m"),
	}

	sort.Slice(quantities, func(i, j int) bool {
		return quantities[i].Less(quantities[j])
	})

	assert.Equal(t, 1.0, quantities[0].Value())
	assert.Equal(t, 2.0, quantities[1].Value())
	assert.Equal(t, 3.0, quantities[2].Value())
}

func TestQuantity_String(t *testing.T) {
	q := mustQuantity(t, 35.5, "kg^3/m*s")
	assert.Equal(t, "35.5 kg^3/m*s", q.String())

	q.SetDisplayMode(DisplayExponential)
	assert.Equal(t, "35.5 kg^3*m^-1*s^-1", q.String())

	exp := mustQuantity(t, 2, "m/s", WithDisplayMode(DisplayExponential))
	assert.Equal(t, "2 m*s^-1", exp.String())
}

func TestQuantity_Coercions(t *testing.T) {
	q := mustQuantity(t, 9.9, "m")

	assert.Equal(t, 9, q.Int())
	assert.Equal(t, 9.9, q.Float())
	assert.False(t, q.IsZero())
	assert.True(t, mustQuantity(t, 0, "m").IsZero())
}

func TestQuantity_ResultInheritsPolicy(t *testing.T) {
	q := mustQuantity(t, 2, "m",
		WithImplicitDimensionless(true),
		WithDisplayMode(DisplayExponential),
	)

	doubled, err := q.Mul(2)
	require.NoError(t, err)

	// The derived quantity still accepts scalars and renders
	// exponentially.
	tripled, err := doubled.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, 12.0, tripled.Value())
	assert.Equal(t, DisplayExponential, tripled.DisplayMode())
}

func TestQuantity_DivByZero(t *testing.T) {
	q := mustQuantity(t, 1, "m", WithImplicitDimensionless(true))

	quotient, err := q.Div(0)

	require.NoError(t, err)
	assert.True(t, math.IsInf(quotient.Value(), 1))
}
