package tower

import (
	"fmt"
	"math/big"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/debug"
	"github.com/consensys/eip1962/field"
	"github.com/consensys/eip1962/logger"
	"github.com/consensys/gnark-crypto/field/pool"
)

// Extension3 is a cubic extension Fp3 = Fp[v] / (v^3 - nonResidue).
// Immutable once the Frobenius coefficients are computed.
//
// Unlike the quadratic case there is no cube-residue test on the non-residue
// anywhere in the pipeline; only the zero check applies.
type Extension3 struct {
	Base       *field.Field
	NonResidue field.Element

	// FrobeniusCoeffsC1[i] and FrobeniusCoeffsC2[i] multiply the v and v^2
	// coordinates under the p^i power map.
	FrobeniusCoeffsC1 [3]field.Element
	FrobeniusCoeffsC2 [3]field.Element
}

// NewExtension3 builds the cubic extension of the non-residue's field.
// Frobenius coefficients are not yet available; call ComputeFrobeniusCoeffs
// before using the p-power map.
func NewExtension3(nonResidue *field.Element) *Extension3 {
	e := &Extension3{
		Base: nonResidue.Field(),
	}
	e.NonResidue.Set(nonResidue)

	log := logger.Logger()
	log.Debug().Int("degree", 3).Int("bits", e.Base.Modulus().BitLen()).Int("limbs", e.Base.NbLimbs()).Msg("constructed extension field")

	return e
}

// Degree returns 3.
func (e *Extension3) Degree() int { return 3 }

// ComputeFrobeniusCoeffs derives the coefficients of the p-power map from the
// characteristic. It fails with eip1962.ErrUnknownParameter when p^i - 1 is
// not divisible by 3 for some power i, i.e. when the modulus shape does not
// admit a well-defined cubic Frobenius twist.
func (e *Extension3) ComputeFrobeniusCoeffs(modulus *big.Int) error {
	qPower := pool.BigInt.Get()
	defer pool.BigInt.Put(qPower)
	exp := pool.BigInt.Get()
	defer pool.BigInt.Put(exp)
	rem := pool.BigInt.Get()
	defer pool.BigInt.Put(rem)

	e.FrobeniusCoeffsC1[0] = e.Base.One()
	e.FrobeniusCoeffsC2[0] = e.Base.One()

	qPower.Set(modulus)
	for i := 1; i < 3; i++ {
		exp.Sub(qPower, big.NewInt(1))
		exp.QuoRem(exp, big.NewInt(3), rem)
		if rem.Sign() != 0 {
			return fmt.Errorf("%w: failed to calculate Frobenius coeffs for Fp3", eip1962.ErrUnknownParameter)
		}
		e.FrobeniusCoeffsC1[i] = e.Base.NewElement()
		e.FrobeniusCoeffsC1[i].Exp(&e.NonResidue, exp)
		e.FrobeniusCoeffsC2[i] = e.Base.NewElement()
		e.FrobeniusCoeffsC2[i].Square(&e.FrobeniusCoeffsC1[i])

		qPower.Mul(qPower, modulus)
	}
	return nil
}

// E3 is an element c0 + c1*v + c2*v^2 of a cubic extension.
type E3 struct {
	C0, C1, C2 field.Element

	ext *Extension3
}

// NewElement returns the zero element of e.
func (e *Extension3) NewElement() E3 {
	return E3{C0: e.Base.NewElement(), C1: e.Base.NewElement(), C2: e.Base.NewElement(), ext: e}
}

// Extension returns the extension the element belongs to.
func (z *E3) Extension() *Extension3 { return z.ext }

// Set sets z to x and returns z.
func (z *E3) Set(x *E3) *E3 {
	z.ext = x.ext
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	z.C2.Set(&x.C2)
	return z
}

// IsZero reports whether all three coordinates are zero.
func (z *E3) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero() && z.C2.IsZero()
}

// Equal reports whether z and x hold the same value.
func (z *E3) Equal(x *E3) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1) && z.C2.Equal(&x.C2)
}

// Add sets z = x + y and returns z.
func (z *E3) Add(x, y *E3) *E3 {
	z.ext = x.ext
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	z.C2.Add(&x.C2, &y.C2)
	return z
}

// Sub sets z = x - y and returns z.
func (z *E3) Sub(x, y *E3) *E3 {
	z.ext = x.ext
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	z.C2.Sub(&x.C2, &y.C2)
	return z
}

// Neg sets z = -x and returns z.
func (z *E3) Neg(x *E3) *E3 {
	z.ext = x.ext
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	z.C2.Neg(&x.C2)
	return z
}

// Mul sets z = x * y reducing v^3 to the non-residue, and returns z.
func (z *E3) Mul(x, y *E3) *E3 {
	debug.Assert(x.ext == y.ext, "elements from different extensions")
	ext := x.ext

	var t0, t1, t2, u, c0, c1, c2 field.Element

	// schoolbook products, then reduce v^3 -> nonResidue
	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)
	t2.Mul(&x.C2, &y.C2)

	// c0 = a0 b0 + nr (a1 b2 + a2 b1)
	c0.Mul(&x.C1, &y.C2)
	u.Mul(&x.C2, &y.C1)
	c0.Add(&c0, &u)
	c0.Mul(&c0, &ext.NonResidue)
	c0.Add(&c0, &t0)

	// c1 = a0 b1 + a1 b0 + nr a2 b2
	c1.Mul(&x.C0, &y.C1)
	u.Mul(&x.C1, &y.C0)
	c1.Add(&c1, &u)
	u.Mul(&t2, &ext.NonResidue)
	c1.Add(&c1, &u)

	// c2 = a0 b2 + a2 b0 + a1 b1
	c2.Mul(&x.C0, &y.C2)
	u.Mul(&x.C2, &y.C0)
	c2.Add(&c2, &u)
	c2.Add(&c2, &t1)

	z.ext = ext
	z.C0.Set(&c0)
	z.C1.Set(&c1)
	z.C2.Set(&c2)
	return z
}

// Square sets z = x * x and returns z.
func (z *E3) Square(x *E3) *E3 {
	return z.Mul(x, x)
}

// Frobenius sets z to x raised to the p^power map and returns z.
func (z *E3) Frobenius(x *E3, power uint) *E3 {
	z.Set(x)
	z.C1.Mul(&z.C1, &z.ext.FrobeniusCoeffsC1[power%3])
	z.C2.Mul(&z.C2, &z.ext.FrobeniusCoeffsC2[power%3])
	return z
}

func (z *E3) String() string {
	return "(" + z.C0.String() + ", " + z.C1.String() + ", " + z.C2.String() + ")"
}
