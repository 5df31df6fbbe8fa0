// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package curve implements short Weierstrass curves over a runtime-supplied
// prime field and its quadratic and cubic extensions.
//
// Point constructors perform no membership check: the decoding layer builds
// points from untrusted coordinates and the dispatcher decides when to pay
// for validation through Contains. The encoding (0, 0) denotes the point at
// infinity throughout.
package curve

import (
	"github.com/consensys/eip1962/field"
)

// Curve is y^2 = x^3 + a*x + b over the base prime field, with the order of
// the subgroup of interest as a little-endian limb vector. Immutable.
type Curve struct {
	A, B  field.Element
	Order []uint64

	baseField *field.Field
}

// NewCurve builds a curve from its coefficients and group order.
func NewCurve(a, b *field.Element, order []uint64) *Curve {
	c := &Curve{
		Order:     order,
		baseField: a.Field(),
	}
	c.A.Set(a)
	c.B.Set(b)
	return c
}

// Field returns the base field of the curve.
func (c *Curve) Field() *field.Field { return c.baseField }

// Point is an affine point on a Curve. The zero value of both coordinates is
// the point at infinity.
type Point struct {
	X, Y field.Element

	curve *Curve
}

// PointFromXY builds an affine point from untrusted coordinates without
// checking curve membership.
func (c *Curve) PointFromXY(x, y *field.Element) Point {
	var p Point
	p.curve = c
	p.X.Set(x)
	p.Y.Set(y)
	return p
}

// Infinity returns the point at infinity on c.
func (c *Curve) Infinity() Point {
	var p Point
	p.curve = c
	p.X = c.baseField.NewElement()
	p.Y = c.baseField.NewElement()
	return p
}

// Curve returns the curve the point was built on.
func (p *Point) Curve() *Curve { return p.curve }

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Contains reports whether p satisfies the curve equation. The point at
// infinity is on every curve.
func (p *Point) Contains() bool {
	if p.IsInfinity() {
		return true
	}
	c := p.curve

	var lhs, rhs, t field.Element
	lhs.Square(&p.Y)

	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	t.Mul(&c.A, &p.X)
	rhs.Add(&rhs, &t)
	rhs.Add(&rhs, &c.B)

	return lhs.Equal(&rhs)
}
