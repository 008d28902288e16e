package collider

import (
	"errors"
	"fmt"
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// DigestSize is the length in bytes of every full digest this package truncates; k may range up
// to the whole of it.
const DigestSize = 32

// ErrUnknownAlgorithm is returned when the requested digest primitive cannot be constructed.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algo names a 32-byte digest primitive.
type Algo string

const (
	SHA256 Algo = "sha256"
	BLAKE3 Algo = "blake3"
)

// New constructs a fresh hash state for the named primitive. Each worker holds its own instance;
// hash.Hash is not safe for concurrent use.
func (a Algo) New() (hash.Hash, error) {
	switch a {
	case "", SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// Fingerprint returns the last k bytes of the full digest of c, computed on h. It resets h first,
// so any prior state is discarded. Precondition: 1 <= k <= h.Size().
func Fingerprint(h hash.Hash, c Vector, k int) Vector {
	h.Reset()
	h.Write(c)
	sum := h.Sum(nil)
	return Vector(sum[len(sum)-k:])
}
