package curve

import (
	"github.com/consensys/eip1962/tower"
)

// CubicTwist is y^2 = x^3 + a*x + b with coefficients in a cubic extension,
// carrying the second pairing group of a curve with a cubic twist.
type CubicTwist struct {
	A, B  tower.E3
	Order []uint64

	ext *tower.Extension3
}

// NewCubicTwist builds a cubic-twist curve from its coefficients and group order.
func NewCubicTwist(a, b *tower.E3, order []uint64) *CubicTwist {
	c := &CubicTwist{
		Order: order,
		ext:   a.Extension(),
	}
	c.A.Set(a)
	c.B.Set(b)
	return c
}

// Extension returns the cubic extension the curve is defined over.
func (c *CubicTwist) Extension() *tower.Extension3 { return c.ext }

// CubicTwistPoint is an affine point on a CubicTwist. The zero value of both
// coordinates is the point at infinity.
type CubicTwistPoint struct {
	X, Y tower.E3

	curve *CubicTwist
}

// PointFromXY builds an affine point from untrusted coordinates without
// checking curve membership.
func (c *CubicTwist) PointFromXY(x, y *tower.E3) CubicTwistPoint {
	var p CubicTwistPoint
	p.curve = c
	p.X.Set(x)
	p.Y.Set(y)
	return p
}

// Infinity returns the point at infinity on c.
func (c *CubicTwist) Infinity() CubicTwistPoint {
	var p CubicTwistPoint
	p.curve = c
	p.X = c.ext.NewElement()
	p.Y = c.ext.NewElement()
	return p
}

// Curve returns the curve the point was built on.
func (p *CubicTwistPoint) Curve() *CubicTwist { return p.curve }

// IsInfinity reports whether p is the point at infinity.
func (p *CubicTwistPoint) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Contains reports whether p satisfies the curve equation.
func (p *CubicTwistPoint) Contains() bool {
	if p.IsInfinity() {
		return true
	}
	c := p.curve

	var lhs, rhs, t tower.E3
	lhs.Square(&p.Y)

	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	t.Mul(&c.A, &p.X)
	rhs.Add(&rhs, &t)
	rhs.Add(&rhs, &c.B)

	return lhs.Equal(&rhs)
}
