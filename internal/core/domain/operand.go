package domain

// operandKind classifies the right-hand side of an arithmetic
// operation. Each operation evaluates the classification once and
// branches on it, rather than type-switching inline per operator.
type operandKind int

const (
	// operandScalar is a plain real numeric scalar.
	operandScalar operandKind = iota

	// operandQuantity is another unit-bearing quantity.
	operandQuantity

	// operandComplex is a complex scalar, which the engine rejects
	// explicitly rather than silently mangling.
	operandComplex

	// operandUnsupported is any other type.
	operandUnsupported
)

// operand is the classified form of an untyped operand value.
type operand struct {
	kind     operandKind
	scalar   float64
	quantity *Quantity
}

// classifyOperand resolves an untyped value into the tagged operand
// union used by the arithmetic methods.
func classifyOperand(value any) operand {
	switch v := value.(type) {
	case *Quantity:
		if v == nil {
			return operand{kind: operandUnsupported}
		}
		return operand{kind: operandQuantity, quantity: v}
	case Quantity:
		return operand{kind: operandQuantity, quantity: &v}
	case complex64, complex128:
		return operand{kind: operandComplex}
	}

	if scalar, ok := asScalar(value); ok {
		return operand{kind: operandScalar, scalar: scalar}
	}
	return operand{kind: operandUnsupported}
}

// asScalar widens any plain numeric scalar to float64.
func asScalar(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
