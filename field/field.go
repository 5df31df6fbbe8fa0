// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package field implements prime fields over a runtime-supplied modulus.
//
// A Field is constructed once per decode session from an untrusted modulus and
// is immutable afterwards; every Element holds a non-owning reference to the
// Field that produced it. Concurrent sessions may each build their own Field
// and run in parallel, there is no shared mutable state.
//
// The modulus is not checked for primality: that is the caller's economic
// problem (a composite modulus yields a ring, not unsound memory), while the
// structural checks below are required for the representation to be
// well-defined at all.
package field

import (
	"fmt"
	"math"
	"math/big"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/logger"
	"github.com/consensys/gnark-crypto/field/pool"
	"github.com/rs/zerolog"
)

// MaxLimbs bounds the supported modulus width to 16 64-bit limbs (1024 bits).
const MaxLimbs = 16

// Field represents the integers modulo an odd modulus of at most MaxLimbs
// 64-bit limbs. It is immutable after construction.
type Field struct {
	modulus big.Int
	byteLen int
	nbLimbs int

	log zerolog.Logger
}

// NewField builds a prime field from the given modulus.
//
// It fails with eip1962.ErrUnexpectedZero when the modulus is zero, and with
// eip1962.ErrInvalidModulus when the modulus is even, below 3, or wider than
// MaxLimbs limbs.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus == nil || modulus.Sign() == 0 {
		return nil, fmt.Errorf("%w: modulus can not be zero", eip1962.ErrUnexpectedZero)
	}
	if modulus.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: modulus is even", eip1962.ErrInvalidModulus)
	}
	if modulus.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("%w: modulus is too small", eip1962.ErrInvalidModulus)
	}
	nbLimbs := (modulus.BitLen() + 63) / 64
	if nbLimbs > MaxLimbs {
		return nil, fmt.Errorf("%w: modulus has %d limbs, maximum is %d", eip1962.ErrInvalidModulus, nbLimbs, MaxLimbs)
	}

	f := &Field{
		byteLen: (modulus.BitLen() + 7) / 8,
		nbLimbs: nbLimbs,
		log:     logger.Logger(),
	}
	f.modulus.Set(modulus)

	f.log.Debug().Int("bits", modulus.BitLen()).Int("limbs", nbLimbs).Msg("constructed prime field")

	return f, nil
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(&f.modulus)
}

// ByteLen returns the minimal big-endian byte length of the modulus. Note
// that the wire protocol fixes element width from the declared modulus
// encoding length, which may be larger.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// NbLimbs returns the number of 64-bit limbs backing element representations.
func (f *Field) NbLimbs() int {
	return f.nbLimbs
}

var (
	one     = big.NewInt(1)
	u64mask = new(big.Int).SetUint64(math.MaxUint64)
)

// Limbs converts v to a little-endian vector of 64-bit limbs. The result is
// empty for v == 0; callers padding to a fixed representation width handle
// that case.
func Limbs(v *big.Int) []uint64 {
	t := pool.BigInt.Get()
	defer pool.BigInt.Put(t)
	w := pool.BigInt.Get()
	defer pool.BigInt.Put(w)

	t.Set(v)
	out := make([]uint64, 0, (v.BitLen()+63)/64)
	for t.Sign() > 0 {
		w.And(t, u64mask)
		out = append(out, w.Uint64())
		t.Rsh(t, 64)
	}
	return out
}
