package encoding

import (
	"fmt"

	"github.com/consensys/eip1962/field"
	"github.com/consensys/eip1962/io"
	"github.com/consensys/eip1962/tower"
)

// DecodeFp reads one canonical fieldByteLen-byte base field element off the
// front of data and returns it with the unconsumed remainder.
func DecodeFp(data []byte, fieldByteLen int, baseField *field.Field) (field.Element, []byte, error) {
	enc, rest, err := io.ReadFixed(data, fieldByteLen, "Fp element")
	if err != nil {
		return field.Element{}, nil, err
	}
	e := baseField.NewElement()
	if err := e.SetBytesCanonical(enc); err != nil {
		return field.Element{}, nil, fmt.Errorf("failed to parse Fp element: %w", err)
	}
	return e, rest, nil
}

// DecodeFp2 reads an Fp2 element as two consecutive base field elements
// (c0, c1).
func DecodeFp2(data []byte, fieldByteLen int, ext *tower.Extension2) (tower.E2, []byte, error) {
	c0, rest, err := DecodeFp(data, fieldByteLen, ext.Base)
	if err != nil {
		return tower.E2{}, nil, err
	}
	c1, rest, err := DecodeFp(rest, fieldByteLen, ext.Base)
	if err != nil {
		return tower.E2{}, nil, err
	}
	e := ext.NewElement()
	e.C0.Set(&c0)
	e.C1.Set(&c1)
	return e, rest, nil
}

// DecodeFp3 reads an Fp3 element as three consecutive base field elements
// (c0, c1, c2).
func DecodeFp3(data []byte, fieldByteLen int, ext *tower.Extension3) (tower.E3, []byte, error) {
	c0, rest, err := DecodeFp(data, fieldByteLen, ext.Base)
	if err != nil {
		return tower.E3{}, nil, err
	}
	c1, rest, err := DecodeFp(rest, fieldByteLen, ext.Base)
	if err != nil {
		return tower.E3{}, nil, err
	}
	c2, rest, err := DecodeFp(rest, fieldByteLen, ext.Base)
	if err != nil {
		return tower.E3{}, nil, err
	}
	e := ext.NewElement()
	e.C0.Set(&c0)
	e.C1.Set(&c1)
	e.C2.Set(&c2)
	return e, rest, nil
}

// SerializeFpFixedLen encodes a base field element big-endian on exactly
// modulusLen bytes.
func SerializeFpFixedLen(modulusLen int, e *field.Element) ([]byte, error) {
	return e.BytesFixed(modulusLen)
}

// SerializeFp2FixedLen encodes an Fp2 element as the concatenation of its
// coordinates in tower order, modulusLen bytes each.
func SerializeFp2FixedLen(modulusLen int, e *tower.E2) ([]byte, error) {
	out, err := e.C0.BytesFixed(modulusLen)
	if err != nil {
		return nil, err
	}
	c1, err := e.C1.BytesFixed(modulusLen)
	if err != nil {
		return nil, err
	}
	return append(out, c1...), nil
}

// SerializeFp3FixedLen encodes an Fp3 element as the concatenation of its
// coordinates in tower order, modulusLen bytes each.
func SerializeFp3FixedLen(modulusLen int, e *tower.E3) ([]byte, error) {
	out, err := e.C0.BytesFixed(modulusLen)
	if err != nil {
		return nil, err
	}
	c1, err := e.C1.BytesFixed(modulusLen)
	if err != nil {
		return nil, err
	}
	c2, err := e.C2.BytesFixed(modulusLen)
	if err != nil {
		return nil, err
	}
	out = append(out, c1...)
	return append(out, c2...), nil
}
