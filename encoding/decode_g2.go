package encoding

import (
	"fmt"
	"math/big"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/curve"
	"github.com/consensys/eip1962/field"
	"github.com/consensys/eip1962/io"
	"github.com/consensys/eip1962/tower"
)

// CreateFp2Extension reads the degree tag and the non-residue off the front
// of data and builds a quadratic extension with derived Frobenius
// coefficients.
//
// The degree tag must be ExtensionDegree2, the non-residue must be nonzero,
// and its Legendre symbol must be "non-residue": building Fp2 from an actual
// square yields a reducible polynomial and unsound arithmetic downstream.
func CreateFp2Extension(data []byte, modulus *big.Int, fieldByteLen int, baseField *field.Field) (*tower.Extension2, []byte, error) {
	degree, rest, err := io.ReadFixed(data, ExtensionDegreeEncodingLength, "extension degree")
	if err != nil {
		return nil, nil, err
	}
	if degree[0] != ExtensionDegree2 {
		return nil, nil, fmt.Errorf("%w: extension degree expected to be 2", eip1962.ErrUnknownParameter)
	}

	nonResidue, rest, err := DecodeFp(rest, fieldByteLen, baseField)
	if err != nil {
		return nil, nil, err
	}
	if nonResidue.IsZero() {
		return nil, nil, fmt.Errorf("%w: Fp2 non-residue can not be zero", eip1962.ErrUnexpectedZero)
	}
	if s := baseField.Legendre(&nonResidue); s != field.QuadraticNonResidue {
		return nil, nil, fmt.Errorf("%w: non-residue for Fp2 is actually a residue", eip1962.ErrNotNonResidue)
	}

	ext := tower.NewExtension2(&nonResidue)
	if err := ext.ComputeFrobeniusCoeffs(modulus); err != nil {
		return nil, nil, err
	}
	return ext, rest, nil
}

// CreateFp3Extension reads the degree tag and the non-residue off the front
// of data and builds a cubic extension with derived Frobenius coefficients.
//
// The degree tag must be ExtensionDegree3 and the non-residue must be
// nonzero. There is no cube-residue test; see the tower package docs.
func CreateFp3Extension(data []byte, modulus *big.Int, fieldByteLen int, baseField *field.Field) (*tower.Extension3, []byte, error) {
	degree, rest, err := io.ReadFixed(data, ExtensionDegreeEncodingLength, "extension degree")
	if err != nil {
		return nil, nil, err
	}
	if degree[0] != ExtensionDegree3 {
		return nil, nil, fmt.Errorf("%w: extension degree expected to be 3", eip1962.ErrUnknownParameter)
	}

	nonResidue, rest, err := DecodeFp(rest, fieldByteLen, baseField)
	if err != nil {
		return nil, nil, err
	}
	if nonResidue.IsZero() {
		return nil, nil, fmt.Errorf("%w: Fp3 non-residue can not be zero", eip1962.ErrUnexpectedZero)
	}

	ext := tower.NewExtension3(&nonResidue)
	if err := ext.ComputeFrobeniusCoeffs(modulus); err != nil {
		return nil, nil, err
	}
	return ext, rest, nil
}

// DecodeG2PointFp2 reads an affine G2 point over a quadratic twist as X then
// Y, each an Fp2 element of 2*fieldByteLen bytes. No membership check.
func DecodeG2PointFp2(data []byte, fieldByteLen int, c *curve.Twist) (curve.TwistPoint, []byte, error) {
	x, rest, err := DecodeFp2(data, fieldByteLen, c.Extension())
	if err != nil {
		return curve.TwistPoint{}, nil, fmt.Errorf("failed to parse X: %w", err)
	}
	y, rest, err := DecodeFp2(rest, fieldByteLen, c.Extension())
	if err != nil {
		return curve.TwistPoint{}, nil, fmt.Errorf("failed to parse Y: %w", err)
	}
	return c.PointFromXY(&x, &y), rest, nil
}

// DecodeG2PointFp3 reads an affine G2 point over a cubic twist as X then Y,
// each an Fp3 element of 3*fieldByteLen bytes. No membership check.
func DecodeG2PointFp3(data []byte, fieldByteLen int, c *curve.CubicTwist) (curve.CubicTwistPoint, []byte, error) {
	x, rest, err := DecodeFp3(data, fieldByteLen, c.Extension())
	if err != nil {
		return curve.CubicTwistPoint{}, nil, fmt.Errorf("failed to parse X: %w", err)
	}
	y, rest, err := DecodeFp3(rest, fieldByteLen, c.Extension())
	if err != nil {
		return curve.CubicTwistPoint{}, nil, fmt.Errorf("failed to parse Y: %w", err)
	}
	return c.PointFromXY(&x, &y), rest, nil
}

// SerializeG2PointFp2 encodes an affine quadratic-twist point as X then Y in
// tower order, modulusLen bytes per base field coordinate.
func SerializeG2PointFp2(modulusLen int, p *curve.TwistPoint) ([]byte, error) {
	x, err := SerializeFp2FixedLen(modulusLen, &p.X)
	if err != nil {
		return nil, err
	}
	y, err := SerializeFp2FixedLen(modulusLen, &p.Y)
	if err != nil {
		return nil, err
	}
	return append(x, y...), nil
}

// SerializeG2PointFp3 encodes an affine cubic-twist point as X then Y in
// tower order, modulusLen bytes per base field coordinate.
func SerializeG2PointFp3(modulusLen int, p *curve.CubicTwistPoint) ([]byte, error) {
	x, err := SerializeFp3FixedLen(modulusLen, &p.X)
	if err != nil {
		return nil, err
	}
	y, err := SerializeFp3FixedLen(modulusLen, &p.Y)
	if err != nil {
		return nil, err
	}
	return append(x, y...), nil
}

// ParseABInFp2 reads the two curve coefficients a and b as consecutive Fp2
// elements.
func ParseABInFp2(data []byte, modulusLen int, ext *tower.Extension2) (tower.E2, tower.E2, []byte, error) {
	a, rest, err := DecodeFp2(data, modulusLen, ext)
	if err != nil {
		return tower.E2{}, tower.E2{}, nil, fmt.Errorf("failed to parse A: %w", err)
	}
	b, rest, err := DecodeFp2(rest, modulusLen, ext)
	if err != nil {
		return tower.E2{}, tower.E2{}, nil, fmt.Errorf("failed to parse B: %w", err)
	}
	return a, b, rest, nil
}

// ParseABInFp3 reads the two curve coefficients a and b as consecutive Fp3
// elements.
func ParseABInFp3(data []byte, modulusLen int, ext *tower.Extension3) (tower.E3, tower.E3, []byte, error) {
	a, rest, err := DecodeFp3(data, modulusLen, ext)
	if err != nil {
		return tower.E3{}, tower.E3{}, nil, fmt.Errorf("failed to parse A: %w", err)
	}
	b, rest, err := DecodeFp3(rest, modulusLen, ext)
	if err != nil {
		return tower.E3{}, tower.E3{}, nil, fmt.Errorf("failed to parse B: %w", err)
	}
	return a, b, rest, nil
}
