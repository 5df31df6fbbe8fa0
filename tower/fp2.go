// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package tower implements quadratic and cubic extensions over a
// runtime-supplied prime field.
//
// An extension is built once per decode session from an untrusted non-residue
// and is immutable after its Frobenius coefficients have been derived. The
// validity checks on the non-residue itself (nonzero, and for the quadratic
// case a Legendre test) belong to the decoding layer; the constructors here
// assume a vetted element.
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

// Extension2 is a quadratic extension Fp2 = Fp[u] / (u^2 - nonResidue).
// Immutable once the Frobenius coefficients are computed.
type Extension2 struct {
	Base       *field.Field
	NonResidue field.Element

	// FrobeniusCoeffs[i] multiplies the u coordinate under the p^i power map.
	FrobeniusCoeffs [2]field.Element
}

// NewExtension2 builds the quadratic extension of the non-residue's field.
// Frobenius coefficients are not yet available; call ComputeFrobeniusCoeffs
// before using the p-power map.
func NewExtension2(nonResidue *field.Element) *Extension2 {
	e := &Extension2{
		Base: nonResidue.Field(),
	}
	e.NonResidue.Set(nonResidue)

	log := logger.Logger()
	log.Debug().Int("degree", 2).Int("bits", e.Base.Modulus().BitLen()).Int("limbs", e.Base.NbLimbs()).Msg("constructed extension field")

	return e
}

// Degree returns 2.
func (e *Extension2) Degree() int { return 2 }

// ComputeFrobeniusCoeffs derives the coefficients of the p-power map from the
// characteristic. It fails with eip1962.ErrUnknownParameter when p - 1 is not
// divisible by the extension degree.
func (e *Extension2) ComputeFrobeniusCoeffs(modulus *big.Int) error {
	exp := pool.BigInt.Get()
	defer pool.BigInt.Put(exp)

	exp.Sub(modulus, big.NewInt(1))
	if exp.Bit(0) != 0 {
		return fmt.Errorf("%w: failed to calculate Frobenius coeffs for Fp2", eip1962.ErrUnknownParameter)
	}
	exp.Rsh(exp, 1)

	e.FrobeniusCoeffs[0] = e.Base.One()
	e.FrobeniusCoeffs[1] = e.Base.NewElement()
	e.FrobeniusCoeffs[1].Exp(&e.NonResidue, exp)
	return nil
}

// E2 is an element c0 + c1*u of a quadratic extension. Like field.Element it
// must be obtained from its extension and manipulated through methods.
type E2 struct {
	C0, C1 field.Element

	ext *Extension2
}

// NewElement returns the zero element of e.
func (e *Extension2) NewElement() E2 {
	return E2{C0: e.Base.NewElement(), C1: e.Base.NewElement(), ext: e}
}

// Extension returns the extension the element belongs to.
func (z *E2) Extension() *Extension2 { return z.ext }

// Set sets z to x and returns z.
func (z *E2) Set(x *E2) *E2 {
	z.ext = x.ext
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	return z
}

// IsZero reports whether both coordinates are zero.
func (z *E2) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// Equal reports whether z and x hold the same value.
func (z *E2) Equal(x *E2) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// Add sets z = x + y and returns z.
func (z *E2) Add(x, y *E2) *E2 {
	z.ext = x.ext
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub sets z = x - y and returns z.
func (z *E2) Sub(x, y *E2) *E2 {
	z.ext = x.ext
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg sets z = -x and returns z.
func (z *E2) Neg(x *E2) *E2 {
	z.ext = x.ext
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Mul sets z = x * y reducing u^2 to the non-residue, and returns z.
func (z *E2) Mul(x, y *E2) *E2 {
	debug.Assert(x.ext == y.ext, "elements from different extensions")
	ext := x.ext

	var t0, t1, s0, s1 field.Element
	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)

	s0.Add(&x.C0, &x.C1)
	s1.Add(&y.C0, &y.C1)
	s0.Mul(&s0, &s1)
	s0.Sub(&s0, &t0)
	s0.Sub(&s0, &t1)

	t1.Mul(&t1, &ext.NonResidue)

	z.ext = ext
	z.C0.Add(&t0, &t1)
	z.C1.Set(&s0)
	return z
}

// Square sets z = x * x and returns z.
func (z *E2) Square(x *E2) *E2 {
	return z.Mul(x, x)
}

// Frobenius sets z to x raised to the p^power map and returns z.
func (z *E2) Frobenius(x *E2, power uint) *E2 {
	z.Set(x)
	z.C1.Mul(&z.C1, &z.ext.FrobeniusCoeffs[power%2])
	return z
}

func (z *E2) String() string {
	return "(" + z.C0.String() + ", " + z.C1.String() + ")"
}
