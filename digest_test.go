package collider

import (
	"errors"
	"testing"

	sha256 "github.com/minio/sha256-simd"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestFingerprintIsDigestSuffix(t *testing.T) {
	t.Parallel()

	c := Vector{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	full := sha256.Sum256(c)
	h, err := SHA256.New()
	require.NoError(t, err)

	for k := 1; k <= MaxK; k++ {
		fp := Fingerprint(h, c, k)
		require.Len(t, fp, k)
		require.Equal(t, Vector(full[DigestSize-k:]), fp)
	}
}

func TestFingerprintBlake3(t *testing.T) {
	t.Parallel()

	c := Vector{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	full := blake3.Sum256(c)
	h, err := BLAKE3.New()
	require.NoError(t, err)

	fp := Fingerprint(h, c, 4)
	require.Equal(t, Vector(full[DigestSize-4:]), fp)
}

func TestDigestSizes(t *testing.T) {
	t.Parallel()

	for _, a := range []Algo{SHA256, BLAKE3, Algo("")} {
		h, err := a.New()
		require.NoError(t, err)
		require.Equal(t, DigestSize, h.Size())
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := Algo("md5").New()
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
}
