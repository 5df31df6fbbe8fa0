package field

import (
	"github.com/consensys/gnark-crypto/field/pool"
)

// LegendreSymbol is the quadratic-residue status of a field element.
type LegendreSymbol int8

const (
	QuadraticNonResidue LegendreSymbol = -1
	LegendreZero        LegendreSymbol = 0
	QuadraticResidue    LegendreSymbol = 1
)

// Legendre computes the Legendre symbol of x by raising it to (p-1)/2.
//
// Over a prime modulus the result is exact. The cost is one modular
// exponentiation bounded by the modulus bit length; it runs to completion.
func (f *Field) Legendre(x *Element) LegendreSymbol {
	if x.IsZero() {
		return LegendreZero
	}

	exp := pool.BigInt.Get()
	defer pool.BigInt.Put(exp)
	res := pool.BigInt.Get()
	defer pool.BigInt.Put(res)

	// (p - 1) / 2
	exp.Sub(&f.modulus, one)
	exp.Rsh(exp, 1)

	res.Exp(&x.v, exp, &f.modulus)
	if res.Cmp(one) == 0 {
		return QuadraticResidue
	}
	return QuadraticNonResidue
}
