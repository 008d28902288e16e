package collider

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// A Vector is a fixed-length byte string: a candidate preimage walked by a search lane, or the
// truncated digest of one. Inc and Dec treat it as a big-endian unsigned integer, wrapping at
// either end of its range.

type Vector []byte

// NewVector returns an all-zero Vector of ln bytes.
func NewVector(ln int) Vector { return make(Vector, ln) }

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) Equal(o Vector) bool { return bytes.Equal(v, o) }

// Compare orders Vectors first by length, then lexicographically by byte value. The ordering has
// no numeric meaning; it only makes Vectors usable as sorted keys.
func (v Vector) Compare(o Vector) int {
	if len(v) != len(o) {
		if len(v) < len(o) {
			return -1
		}
		return 1
	}
	return bytes.Compare(v, o)
}

// Inc adds one, carrying toward the leading byte; all-ones wraps to zero.
func (v Vector) Inc() {
	for i := len(v) - 1; i >= 0; i-- {
		v[i]++
		if v[i] != 0 {
			break
		}
	}
}

// Dec subtracts one, borrowing toward the leading byte; zero wraps to all-ones.
func (v Vector) Dec() {
	for i := len(v) - 1; i >= 0; i-- {
		v[i]--
		if v[i] != 0xff {
			break
		}
	}
}

// Bits renders every byte as eight binary digits, zero-padded, most significant bit first. This
// is the format collision records are persisted in.
func (v Vector) Bits() string {
	var b strings.Builder
	b.Grow(len(v) * 8)
	for _, octet := range v {
		for bit := 7; bit >= 0; bit-- {
			b.WriteByte('0' + octet>>bit&1)
		}
	}
	return b.String()
}

func (v Vector) String() string { return hex.EncodeToString(v) }
