package domain

import "errors"

// Domain errors represent unit-algebra failures.
// These are distinct from infrastructure errors.
var (
	// ErrParse indicates malformed unit text: more than one divisor,
	// an unknown symbol, digits outside an exponent, or a "^" with a
	// missing or non-integer exponent.
	ErrParse = errors.New("invalid unit expression")

	// ErrUnitMismatch indicates addition or subtraction between
	// quantities whose unit signatures differ.
	ErrUnitMismatch = errors.New("mismatched units")

	// ErrUnitlessNumber indicates a bare scalar participated in an
	// operation without being declared dimensionless: any scalar in
	// addition/subtraction, or a scalar in multiplication/division
	// when the quantity does not permit implicit dimensionless values.
	ErrUnitlessNumber = errors.New("unitless number")

	// ErrConversion indicates an unknown unit or alias name during
	// a family conversion.
	ErrConversion = errors.New("unknown conversion unit")

	// ErrNotSupported indicates an operation outside the engine's
	// numeric model: complex operands, modulo, or divmod.
	ErrNotSupported = errors.New("operation not supported")

	// ErrUnknownFamily indicates no registered family covers the
	// requested unit names.
	ErrUnknownFamily = errors.New("unknown unit family")

	// ErrAlreadyExists indicates a family is already registered.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
