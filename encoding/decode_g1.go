// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package encoding is the untrusted-input front-end of the pairing engine: it
// decodes field and curve parameters, points and scalars from adversarial
// byte buffers, and serializes results back to the wire.
//
// Every function consumes an exact number of bytes off the front of its input
// and returns the unconsumed remainder, so that an opcode dispatcher can
// chain them into a single forward pass. All failures are terminal and map
// onto the sentinel errors of the root package; no partial value survives an
// error.
package encoding

import (
	"fmt"
	"math/big"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/curve"
	"github.com/consensys/eip1962/field"
	"github.com/consensys/eip1962/io"
)

// GetBaseFieldParams reads the length-prefixed modulus off the front of data.
// It fails with eip1962.ErrUnexpectedZero on a zero modulus. Returns the
// modulus, its declared encoding length and the remainder.
func GetBaseFieldParams(data []byte) (*big.Int, int, []byte, error) {
	enc, rest, err := io.ReadLengthPrefixed(data, "modulus")
	if err != nil {
		return nil, 0, nil, err
	}
	modulus := new(big.Int).SetBytes(enc)
	if modulus.Sign() == 0 {
		return nil, 0, nil, fmt.Errorf("%w: modulus can not be zero", eip1962.ErrUnexpectedZero)
	}
	return modulus, len(enc), rest, nil
}

// ParseBaseField reads the modulus and constructs the base prime field.
// It pre-checks that at least one element encoding remains after the header,
// before any element is decoded. Returns the field, the declared modulus
// byte length, the modulus and the remainder.
func ParseBaseField(data []byte) (*field.Field, int, *big.Int, []byte, error) {
	modulus, modulusLen, rest, err := GetBaseFieldParams(data)
	if err != nil {
		return nil, 0, nil, nil, err
	}
	f, err := field.NewField(modulus)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("failed to create prime field from modulus: %w", err)
	}
	if len(rest) < modulusLen {
		return nil, 0, nil, nil, fmt.Errorf("%w to get base field element", eip1962.ErrInputTooShort)
	}
	return f, modulusLen, modulus, rest, nil
}

// ParseGroupOrder reads the length-prefixed main group order. It fails with
// eip1962.ErrUnexpectedZero on a zero order. Returns the order as a
// little-endian limb vector, its declared byte length, its integer value and
// the remainder.
func ParseGroupOrder(data []byte) ([]uint64, int, *big.Int, []byte, error) {
	enc, rest, err := io.ReadLengthPrefixed(data, "group order")
	if err != nil {
		return nil, 0, nil, nil, err
	}
	order := new(big.Int).SetBytes(enc)
	if order.Sign() == 0 {
		return nil, 0, nil, nil, fmt.Errorf("%w: group order can not be zero", eip1962.ErrUnexpectedZero)
	}
	return field.Limbs(order), len(enc), order, rest, nil
}

// DecodeScalar reads exactly orderByteLen bytes as a big-endian scalar and
// checks it is strictly below the group order. The bound check keeps
// non-reduced scalars away from multiplication routines that assume reduced
// inputs. The result is zero-extended to at least the order's limb count.
func DecodeScalar(data []byte, orderByteLen int, order *big.Int, orderLimbs []uint64) ([]uint64, []byte, error) {
	enc, rest, err := io.ReadFixed(data, orderByteLen, "scalar")
	if err != nil {
		return nil, nil, err
	}
	scalar := new(big.Int).SetBytes(enc)
	if scalar.Cmp(order) >= 0 {
		return nil, nil, fmt.Errorf("failed to parse scalar: %w", eip1962.ErrScalarOutOfRange)
	}
	repr := field.Limbs(scalar)
	for len(repr) < len(orderLimbs) {
		repr = append(repr, 0)
	}
	return repr, rest, nil
}

// ParseABInBaseField reads the two curve coefficients a and b as consecutive
// base field elements.
func ParseABInBaseField(data []byte, modulusLen int, baseField *field.Field) (field.Element, field.Element, []byte, error) {
	a, rest, err := DecodeFp(data, modulusLen, baseField)
	if err != nil {
		return field.Element{}, field.Element{}, nil, fmt.Errorf("failed to parse A: %w", err)
	}
	b, rest, err := DecodeFp(rest, modulusLen, baseField)
	if err != nil {
		return field.Element{}, field.Element{}, nil, fmt.Errorf("failed to parse B: %w", err)
	}
	return a, b, rest, nil
}

// DecodeG1Point reads an affine G1 point as X then Y, each on fieldByteLen
// bytes. No curve membership check is performed here; the encoding (0, 0)
// yields the point at infinity.
func DecodeG1Point(data []byte, fieldByteLen int, c *curve.Curve) (curve.Point, []byte, error) {
	xEnc, rest, err := io.ReadFixed(data, fieldByteLen, "X")
	if err != nil {
		return curve.Point{}, nil, err
	}
	x := c.Field().NewElement()
	if err := x.SetBytesCanonical(xEnc); err != nil {
		return curve.Point{}, nil, fmt.Errorf("failed to parse X: %w", err)
	}
	yEnc, rest, err := io.ReadFixed(rest, fieldByteLen, "Y")
	if err != nil {
		return curve.Point{}, nil, err
	}
	y := c.Field().NewElement()
	if err := y.SetBytesCanonical(yEnc); err != nil {
		return curve.Point{}, nil, fmt.Errorf("failed to parse Y: %w", err)
	}
	return c.PointFromXY(&x, &y), rest, nil
}

// SerializeG1Point encodes an affine G1 point as X then Y, modulusLen bytes
// each.
func SerializeG1Point(modulusLen int, p *curve.Point) ([]byte, error) {
	x, err := SerializeFpFixedLen(modulusLen, &p.X)
	if err != nil {
		return nil, err
	}
	y, err := SerializeFpFixedLen(modulusLen, &p.Y)
	if err != nil {
		return nil, err
	}
	return append(x, y...), nil
}
