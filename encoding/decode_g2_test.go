package encoding

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/eip1962"
	"github.com/consensys/eip1962/curve"
	"github.com/consensys/eip1962/io"
	fp381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCreateFp2Extension(t *testing.T) {
	f := mustField(t, 23)
	modulus := f.Modulus()

	// degree tag 2, non-residue 5
	ext, rest, err := CreateFp2Extension([]byte{0x02, 0x05, 0xcc}, modulus, 1, f)
	require.NoError(t, err)
	require.Equal(t, []byte{0xcc}, rest)
	require.Equal(t, 2, ext.Degree())
	require.Equal(t, "5", ext.NonResidue.String())
	require.Equal(t, "1", ext.FrobeniusCoeffs[0].String())
	require.Equal(t, "22", ext.FrobeniusCoeffs[1].String())
}

func TestCreateFp2ExtensionRejectsBadInput(t *testing.T) {
	f := mustField(t, 23)
	modulus := f.Modulus()

	testCases := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "wrong degree tag", input: []byte{0x03, 0x05}, wantErr: eip1962.ErrUnknownParameter},
		{name: "no degree tag", input: []byte{}, wantErr: eip1962.ErrInputTooShort},
		{name: "no non-residue", input: []byte{0x02}, wantErr: eip1962.ErrInputTooShort},
		{name: "zero non-residue", input: []byte{0x02, 0x00}, wantErr: eip1962.ErrUnexpectedZero},
		{name: "residue as non-residue", input: []byte{0x02, 0x04}, wantErr: eip1962.ErrNotNonResidue},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := CreateFp2Extension(tc.input, modulus, 1, f)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateFp3Extension(t *testing.T) {
	f := mustField(t, 7)
	modulus := f.Modulus()

	ext, rest, err := CreateFp3Extension([]byte{0x03, 0x02, 0xdd}, modulus, 1, f)
	require.NoError(t, err)
	require.Equal(t, []byte{0xdd}, rest)
	require.Equal(t, 3, ext.Degree())
	require.Equal(t, "4", ext.FrobeniusCoeffsC1[1].String())
	require.Equal(t, "2", ext.FrobeniusCoeffsC2[1].String())

	// wrong degree tag
	_, _, err = CreateFp3Extension([]byte{0x02, 0x02}, modulus, 1, f)
	require.ErrorIs(t, err, eip1962.ErrUnknownParameter)

	// a residue is accepted on the cubic path: only the zero check applies
	_, _, err = CreateFp3Extension([]byte{0x03, 0x01}, modulus, 1, f)
	require.NoError(t, err)

	_, _, err = CreateFp3Extension([]byte{0x03, 0x00}, modulus, 1, f)
	require.ErrorIs(t, err, eip1962.ErrUnexpectedZero)
}

func TestCreateFp3ExtensionBadModulusShape(t *testing.T) {
	// 23 = 2 mod 3: Frobenius coefficients cannot be derived
	f := mustField(t, 23)
	_, _, err := CreateFp3Extension([]byte{0x03, 0x05}, f.Modulus(), 1, f)
	require.ErrorIs(t, err, eip1962.ErrUnknownParameter)
}

func newSmallTwist(t *testing.T) *curve.Twist {
	t.Helper()
	f := mustField(t, 23)
	ext, _, err := CreateFp2Extension([]byte{0x02, 0x05}, f.Modulus(), 1, f)
	require.NoError(t, err)
	a := ext.NewElement()
	b := ext.NewElement()
	b.C0.SetUint64(3)
	return curve.NewTwist(&a, &b, []uint64{13})
}

func TestDecodeG2PointFp2RoundTrip(t *testing.T) {
	c := newSmallTwist(t)

	input := []byte{0x01, 0x02, 0x03, 0x04, 0xee}
	p, rest, err := DecodeG2PointFp2(input, 1, c)
	require.NoError(t, err)
	require.Equal(t, "(1, 2)", p.X.String())
	require.Equal(t, "(3, 4)", p.Y.String())
	require.Equal(t, []byte{0xee}, rest)

	out, err := SerializeG2PointFp2(1, &p)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(input[:4], out))
}

func TestDecodeG2PointFp2Errors(t *testing.T) {
	c := newSmallTwist(t)

	_, _, err := DecodeG2PointFp2([]byte{0x01, 0x02, 0x03}, 1, c)
	require.ErrorIs(t, err, eip1962.ErrInputTooShort)
	require.Contains(t, err.Error(), "Y")

	_, _, err = DecodeG2PointFp2([]byte{0x01, 0x17, 0x03, 0x04}, 1, c)
	require.ErrorIs(t, err, eip1962.ErrNonCanonical)
}

func TestParseABInFp2(t *testing.T) {
	c := newSmallTwist(t)

	a, b, rest, err := ParseABInFp2([]byte{0x00, 0x01, 0x02, 0x03, 0x99}, 1, c.Extension())
	require.NoError(t, err)
	require.Equal(t, "(0, 1)", a.String())
	require.Equal(t, "(2, 3)", b.String())
	require.Equal(t, []byte{0x99}, rest)

	_, _, _, err = ParseABInFp2([]byte{0x00, 0x01, 0x02}, 1, c.Extension())
	require.ErrorIs(t, err, eip1962.ErrInputTooShort)
}

func TestDecodeG2PointFp3RoundTrip(t *testing.T) {
	f := mustField(t, 7)
	ext, _, err := CreateFp3Extension([]byte{0x03, 0x02}, f.Modulus(), 1, f)
	require.NoError(t, err)
	a := ext.NewElement()
	b := ext.NewElement()
	b.C0.SetUint64(2)
	c := curve.NewCubicTwist(&a, &b, []uint64{3})

	input := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	p, rest, err := DecodeG2PointFp3(input, 1, c)
	require.NoError(t, err)
	require.Equal(t, "(1, 2, 3)", p.X.String())
	require.Equal(t, "(4, 5, 6)", p.Y.String())
	require.Empty(t, rest)

	out, err := SerializeG2PointFp3(1, &p)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(input, out))

	a2, b2, rest, err := ParseABInFp3(input, 1, ext)
	require.NoError(t, err)
	require.Equal(t, "(1, 2, 3)", a2.String())
	require.Equal(t, "(4, 5, 6)", b2.String())
	require.Empty(t, rest)
}

func TestDecodeG2PointFp2Infinity(t *testing.T) {
	c := newSmallTwist(t)

	p, rest, err := DecodeG2PointFp2(make([]byte, 4), 1, c)
	require.NoError(t, err)
	require.True(t, p.IsInfinity())
	require.Empty(t, rest)

	out, err := SerializeG2PointFp2(1, &p)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 4), out)
}

func TestDecodeG2PointFp3Infinity(t *testing.T) {
	f := mustField(t, 7)
	ext, _, err := CreateFp3Extension([]byte{0x03, 0x02}, f.Modulus(), 1, f)
	require.NoError(t, err)
	a := ext.NewElement()
	b := ext.NewElement()
	b.C0.SetUint64(2)
	c := curve.NewCubicTwist(&a, &b, []uint64{3})

	p, rest, err := DecodeG2PointFp3(make([]byte, 6), 1, c)
	require.NoError(t, err)
	require.True(t, p.IsInfinity())
	require.Empty(t, rest)

	out, err := SerializeG2PointFp3(1, &p)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 6), out)
}

func TestFp2CodecProperty(t *testing.T) {
	f := mustField(t, 23)
	ext, _, err := CreateFp2Extension([]byte{0x02, 0x05}, f.Modulus(), 1, f)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("encode(decode(bytes)) == bytes for canonical input", prop.ForAll(
		func(c0, c1 uint8) bool {
			input := []byte{c0 % 23, c1 % 23}
			e, rest, err := DecodeFp2(input, 1, ext)
			if err != nil || len(rest) != 0 {
				return false
			}
			out, err := SerializeFp2FixedLen(1, &e)
			return err == nil && bytes.Equal(input, out)
		},
		gen.UInt8(), gen.UInt8(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// buildG2SessionInput assembles modulus || degree tag + non-residue || a || b
// || group order || point the way a dispatcher-facing buffer carries them.
func buildG2SessionInput(t *testing.T) []byte {
	t.Helper()
	p := fp381.Modulus()
	feLen := 48

	buf, err := io.AppendLengthPrefixed(nil, p.Bytes())
	require.NoError(t, err)

	// quadratic non-residue -1
	nrBytes := make([]byte, feLen)
	new(big.Int).Sub(p, big.NewInt(1)).FillBytes(nrBytes)
	buf = append(buf, ExtensionDegree2)
	buf = append(buf, nrBytes...)

	// a = (0, 0), b = (4, 4)
	ab := make([]byte, 4*feLen)
	ab[3*feLen-1] = 0x04
	ab[4*feLen-1] = 0x04
	buf = append(buf, ab...)

	// group order of BLS12-381
	order, ok := new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	require.True(t, ok)
	buf, err = io.AppendLengthPrefixed(buf, order.Bytes())
	require.NoError(t, err)

	// an arbitrary canonical point encoding; membership is not checked here
	pt := make([]byte, 4*feLen)
	pt[feLen-1] = 0x01
	pt[2*feLen-1] = 0x02
	pt[3*feLen-1] = 0x03
	pt[4*feLen-1] = 0x04
	return append(buf, pt...)
}

// decodeG2Session drives the full forward pass over one buffer the way the
// opcode dispatcher would.
func decodeG2Session(input []byte) ([]byte, error) {
	f, modulusLen, modulus, rest, err := ParseBaseField(input)
	if err != nil {
		return nil, err
	}
	ext, rest, err := CreateFp2Extension(rest, modulus, modulusLen, f)
	if err != nil {
		return nil, err
	}
	a, b, rest, err := ParseABInFp2(rest, modulusLen, ext)
	if err != nil {
		return nil, err
	}
	orderLimbs, _, _, rest, err := ParseGroupOrder(rest)
	if err != nil {
		return nil, err
	}
	c := curve.NewTwist(&a, &b, orderLimbs)
	p, rest, err := DecodeG2PointFp2(rest, modulusLen, c)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, eip1962.ErrUnknownParameter
	}
	return SerializeG2PointFp2(modulusLen, &p)
}

func TestG2SessionBLS12381(t *testing.T) {
	input := buildG2SessionInput(t)
	out, err := decodeG2Session(input)
	require.NoError(t, err)
	// the serialized point is the last 4*48 bytes of the input
	require.Empty(t, cmp.Diff(input[len(input)-4*48:], out))
}

func TestParallelDecodeSessions(t *testing.T) {
	// sessions share only immutable input bytes; each builds its own field,
	// extension and curve objects
	input := buildG2SessionInput(t)
	want, err := decodeG2Session(input)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 8; j++ {
				out, err := decodeG2Session(input)
				if err != nil {
					return err
				}
				if !bytes.Equal(want, out) {
					return eip1962.ErrUnknownParameter
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// the session fails fast: a corrupted prefix surfaces the first error and no
// partial structure is retained
func TestSessionFailFast(t *testing.T) {
	input := buildG2SessionInput(t)

	// truncate mid-point
	_, err := decodeG2Session(input[:len(input)-1])
	require.ErrorIs(t, err, eip1962.ErrInputTooShort)

	// flip the degree tag
	bad := bytes.Clone(input)
	bad[1+48] = ExtensionDegree3
	_, err = decodeG2Session(bad)
	require.ErrorIs(t, err, eip1962.ErrUnknownParameter)
}
