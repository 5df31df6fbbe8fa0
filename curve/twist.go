package curve

import (
	"github.com/consensys/eip1962/tower"
)

// Twist is y^2 = x^3 + a*x + b with coefficients in a quadratic extension,
// carrying the second pairing group of a curve with a quadratic twist.
type Twist struct {
	A, B  tower.E2
	Order []uint64

	ext *tower.Extension2
}

// NewTwist builds a quadratic-twist curve from its coefficients and group order.
func NewTwist(a, b *tower.E2, order []uint64) *Twist {
	c := &Twist{
		Order: order,
		ext:   a.Extension(),
	}
	c.A.Set(a)
	c.B.Set(b)
	return c
}

// Extension returns the quadratic extension the curve is defined over.
func (c *Twist) Extension() *tower.Extension2 { return c.ext }

// TwistPoint is an affine point on a Twist. The zero value of both
// coordinates is the point at infinity.
type TwistPoint struct {
	X, Y tower.E2

	curve *Twist
}

// PointFromXY builds an affine point from untrusted coordinates without
// checking curve membership.
func (c *Twist) PointFromXY(x, y *tower.E2) TwistPoint {
	var p TwistPoint
	p.curve = c
	p.X.Set(x)
	p.Y.Set(y)
	return p
}

// Infinity returns the point at infinity on c.
func (c *Twist) Infinity() TwistPoint {
	var p TwistPoint
	p.curve = c
	p.X = c.ext.NewElement()
	p.Y = c.ext.NewElement()
	return p
}

// Curve returns the curve the point was built on.
func (p *TwistPoint) Curve() *Twist { return p.curve }

// IsInfinity reports whether p is the point at infinity.
func (p *TwistPoint) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Contains reports whether p satisfies the curve equation.
func (p *TwistPoint) Contains() bool {
	if p.IsInfinity() {
		return true
	}
	c := p.curve

	var lhs, rhs, t tower.E2
	lhs.Square(&p.Y)

	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	t.Mul(&c.A, &p.X)
	rhs.Add(&rhs, &t)
	rhs.Add(&rhs, &c.B)

	return lhs.Equal(&rhs)
}
