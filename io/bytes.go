// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package io implements the length-prefixed cursor protocol shared by every
// decoder in this module.
//
// The wire format is a single forward pass over an immutable byte slice: each
// read returns the requested payload together with the unconsumed remainder,
// and fails before touching the payload when the declared length exceeds the
// bytes available. There is no backtracking.
package io

import (
	"fmt"

	"github.com/consensys/eip1962"
)

// LengthPrefixBytes is the width of every length header in the wire format.
const LengthPrefixBytes = 1

// ReadLengthPrefixed splits a short blob off the front of data. The first
// byte is the payload length L in [0, 255], followed by exactly L payload
// bytes. It returns the payload and the unconsumed remainder.
func ReadLengthPrefixed(data []byte, what string) (payload, rest []byte, err error) {
	if len(data) < LengthPrefixBytes {
		return nil, nil, fmt.Errorf("%w to get %s length", eip1962.ErrInputTooShort, what)
	}
	length := int(data[0])
	if len(data) < LengthPrefixBytes+length {
		return nil, nil, fmt.Errorf("%w to get %s", eip1962.ErrInputTooShort, what)
	}
	return data[LengthPrefixBytes : LengthPrefixBytes+length], data[LengthPrefixBytes+length:], nil
}

// ReadFixed splits exactly n bytes off the front of data. what names the
// element being read and is only used in the error message.
func ReadFixed(data []byte, n int, what string) (head, rest []byte, err error) {
	if len(data) < n {
		return nil, nil, fmt.Errorf("%w to get %s", eip1962.ErrInputTooShort, what)
	}
	return data[:n], data[n:], nil
}

// AppendLengthPrefixed appends payload to dst in length-prefixed form and
// returns the extended slice. Payloads longer than 255 bytes do not fit the
// 1-byte length header.
func AppendLengthPrefixed(dst, payload []byte) ([]byte, error) {
	if len(payload) > 255 {
		return nil, fmt.Errorf("payload too long %d > 255", len(payload))
	}
	dst = append(dst, uint8(len(payload)))
	return append(dst, payload...), nil
}
