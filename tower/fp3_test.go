package tower

import (
	"math/big"
	"testing"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/field"
	fp377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"github.com/stretchr/testify/require"
)

// F_7 with non-residue 2; 2 is not a cube mod 7 and 7 = 1 mod 3.
func newSmallExt3(t *testing.T) (*field.Field, *Extension3) {
	t.Helper()
	f, err := field.NewField(big.NewInt(7))
	require.NoError(t, err)
	nr := f.NewElement()
	nr.SetUint64(2)
	ext := NewExtension3(&nr)
	require.NoError(t, ext.ComputeFrobeniusCoeffs(f.Modulus()))
	return f, ext
}

func TestExtension3FrobeniusCoeffs(t *testing.T) {
	_, ext := newSmallExt3(t)

	// c1[i] = 2^((7^i - 1)/3): [1, 2^2, 2^16] = [1, 4, 2] mod 7
	require.Equal(t, "1", ext.FrobeniusCoeffsC1[0].String())
	require.Equal(t, "4", ext.FrobeniusCoeffsC1[1].String())
	require.Equal(t, "2", ext.FrobeniusCoeffsC1[2].String())

	// c2[i] = c1[i]^2
	require.Equal(t, "1", ext.FrobeniusCoeffsC2[0].String())
	require.Equal(t, "2", ext.FrobeniusCoeffsC2[1].String())
	require.Equal(t, "4", ext.FrobeniusCoeffsC2[2].String())
}

func TestExtension3FrobeniusFailsWhenPMinus1NotDivisibleBy3(t *testing.T) {
	// 23 = 2 mod 3, so (23-1) is not divisible by 3
	f, err := field.NewField(big.NewInt(23))
	require.NoError(t, err)
	nr := f.NewElement()
	nr.SetUint64(5)
	ext := NewExtension3(&nr)
	err = ext.ComputeFrobeniusCoeffs(f.Modulus())
	require.ErrorIs(t, err, eip1962.ErrUnknownParameter)
}

func TestExtension3FrobeniusCoeffsBLS12377(t *testing.T) {
	// BLS12-377 has p = 1 mod 3
	f, err := field.NewField(fp377.Modulus())
	require.NoError(t, err)
	nr := f.NewElement()
	nr.SetUint64(5)
	nr.Neg(&nr)
	ext := NewExtension3(&nr)
	require.NoError(t, ext.ComputeFrobeniusCoeffs(f.Modulus()))

	for i := 0; i < 3; i++ {
		require.False(t, ext.FrobeniusCoeffsC1[i].IsZero())
		require.False(t, ext.FrobeniusCoeffsC2[i].IsZero())
	}
}

func TestE3Arithmetic(t *testing.T) {
	_, ext := newSmallExt3(t)

	// v^2 * v = v^3 = 2
	v := ext.NewElement()
	v.C1.SetUint64(1)
	v2 := ext.NewElement()
	v2.C2.SetUint64(1)
	var z E3
	z.Mul(&v2, &v)
	require.Equal(t, "(2, 0, 0)", z.String())

	a := ext.NewElement()
	a.C0.SetUint64(3)
	a.C1.SetUint64(1)
	a.C2.SetUint64(2)
	b := ext.NewElement()
	b.C0.SetUint64(5)
	b.C1.SetUint64(6)
	b.C2.SetUint64(4)

	// c0 = 15 + 2*(4 + 12) = 47 = 5
	// c1 = 18 + 5 + 2*8   = 39 = 4
	// c2 = 12 + 10 + 6    = 28 = 0
	z.Mul(&a, &b)
	require.Equal(t, "(5, 4, 0)", z.String())

	z.Add(&a, &b)
	require.Equal(t, "(1, 0, 6)", z.String())
	z.Sub(&a, &b)
	require.Equal(t, "(5, 2, 5)", z.String())
	z.Neg(&a)
	require.Equal(t, "(4, 6, 5)", z.String())

	zero := ext.NewElement()
	require.True(t, zero.IsZero())
}

func TestE3Frobenius(t *testing.T) {
	_, ext := newSmallExt3(t)

	a := ext.NewElement()
	a.C0.SetUint64(3)
	a.C1.SetUint64(1)
	a.C2.SetUint64(2)

	// cross-check against a^p computed by repeated multiplication
	pow := ext.NewElement()
	pow.C0.SetUint64(1)
	for i := 0; i < 7; i++ {
		pow.Mul(&pow, &a)
	}
	var z E3
	z.Frobenius(&a, 1)
	require.True(t, z.Equal(&pow))

	// three applications of the p-power map are the identity
	z.Frobenius(&z, 1)
	z.Frobenius(&z, 1)
	require.True(t, z.Equal(&a))

	z.Frobenius(&a, 0)
	require.True(t, z.Equal(&a))
}
