package eip1962

import "errors"

var (
	// ErrInputTooShort is returned when a declared length exceeds the bytes
	// remaining in the buffer, at any stage of parsing.
	ErrInputTooShort = errors.New("input is not long enough")

	// ErrUnexpectedZero is returned when a modulus, group order or extension
	// non-residue decodes to zero.
	ErrUnexpectedZero = errors.New("unexpected zero value")

	// ErrUnknownParameter is returned on an extension degree tag mismatch, or
	// when Frobenius coefficients cannot be derived for the supplied modulus.
	ErrUnknownParameter = errors.New("unknown or unsupported parameter")

	// ErrNotNonResidue is returned when the value supplied as a quadratic
	// non-residue is in fact a residue (or zero): squares of such an element
	// do not span a degree-2 extension and later arithmetic would be unsound.
	ErrNotNonResidue = errors.New("value is not a quadratic non-residue")

	// ErrScalarOutOfRange is returned when a decoded scalar is not strictly
	// below the group order.
	ErrScalarOutOfRange = errors.New("scalar is not smaller than group order")

	// ErrInvalidModulus is returned when a nonzero modulus cannot back a
	// field: it is even, too small, or wider than the supported limb range.
	ErrInvalidModulus = errors.New("modulus cannot be used to construct a field")

	// ErrNonCanonical is returned when a fixed-width field element encoding
	// is not strictly below the field modulus.
	ErrNonCanonical = errors.New("encoding is not a canonical field element")
)
