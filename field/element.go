package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/debug"
)

// Element is an element of a prime field, held in canonical form: the backing
// integer is always in [0, modulus). Elements must be obtained through
// (*Field).NewElement and manipulated through the methods below; they are not
// safe to copy by assignment.
type Element struct {
	v big.Int
	f *Field
}

// NewElement returns the zero element of f.
func (f *Field) NewElement() Element {
	return Element{f: f}
}

// One returns the unit element of f.
func (f *Field) One() Element {
	e := Element{f: f}
	e.v.SetUint64(1)
	return e
}

// Field returns the field the element belongs to.
func (e *Element) Field() *Field {
	return e.f
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	z.f = x.f
	z.v.Set(&x.v)
	return z
}

// SetUint64 sets z to v reduced modulo the field modulus.
func (z *Element) SetUint64(v uint64) *Element {
	z.v.SetUint64(v)
	z.v.Mod(&z.v, &z.f.modulus)
	return z
}

// SetBigInt sets z to v reduced modulo the field modulus.
func (z *Element) SetBigInt(v *big.Int) *Element {
	z.v.Mod(v, &z.f.modulus)
	return z
}

// SetBytesCanonical interprets data as a big-endian integer and sets z to it.
// It fails with eip1962.ErrNonCanonical if the value is not strictly below
// the modulus; the element is left untouched on failure.
func (z *Element) SetBytesCanonical(data []byte) error {
	t := new(big.Int).SetBytes(data)
	if t.Cmp(&z.f.modulus) >= 0 {
		return fmt.Errorf("%w: value is not smaller than modulus", eip1962.ErrNonCanonical)
	}
	z.v.Set(t)
	return nil
}

// BytesFixed encodes the element big-endian on exactly n bytes. It fails if
// the value does not fit.
func (e *Element) BytesFixed(n int) ([]byte, error) {
	if (e.v.BitLen()+7)/8 > n {
		return nil, fmt.Errorf("field element does not fit into %d bytes", n)
	}
	buf := make([]byte, n)
	e.v.FillBytes(buf)
	return buf, nil
}

// BigInt sets res to the canonical integer value of e and returns res.
func (e *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(&e.v)
}

// IsZero reports whether e is the zero element.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and x hold the same value.
func (e *Element) Equal(x *Element) bool {
	return e.v.Cmp(&x.v) == 0
}

// Add sets z = x + y mod p and returns z.
func (z *Element) Add(x, y *Element) *Element {
	debug.Assert(x.f == y.f, "elements from different fields")
	z.f = x.f
	z.v.Add(&x.v, &y.v)
	if z.v.Cmp(&z.f.modulus) >= 0 {
		z.v.Sub(&z.v, &z.f.modulus)
	}
	return z
}

// Sub sets z = x - y mod p and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	debug.Assert(x.f == y.f, "elements from different fields")
	z.f = x.f
	z.v.Sub(&x.v, &y.v)
	if z.v.Sign() < 0 {
		z.v.Add(&z.v, &z.f.modulus)
	}
	return z
}

// Neg sets z = -x mod p and returns z.
func (z *Element) Neg(x *Element) *Element {
	z.f = x.f
	if x.v.Sign() == 0 {
		z.v.SetUint64(0)
		return z
	}
	z.v.Sub(&z.f.modulus, &x.v)
	return z
}

// Mul sets z = x * y mod p and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	debug.Assert(x.f == y.f, "elements from different fields")
	z.f = x.f
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, &z.f.modulus)
	return z
}

// Square sets z = x * x mod p and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp sets z = x^k mod p and returns z. The exponent is interpreted as an
// unsigned integer.
func (z *Element) Exp(x *Element, k *big.Int) *Element {
	z.f = x.f
	z.v.Exp(&x.v, k, &z.f.modulus)
	return z
}

// Limbs returns the canonical value of e as a little-endian 64-bit limb
// vector, zero-extended to the limb count of the field.
func (e *Element) Limbs() []uint64 {
	limbs := Limbs(&e.v)
	for len(limbs) < e.f.nbLimbs {
		limbs = append(limbs, 0)
	}
	return limbs
}

func (e *Element) String() string {
	return e.v.String()
}
