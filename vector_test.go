package collider

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorIncDecWrap(t *testing.T) {
	t.Parallel()

	v := Vector{0x00, 0xff}
	v.Inc()
	require.Equal(t, Vector{0x01, 0x00}, v)
	v.Dec()
	require.Equal(t, Vector{0x00, 0xff}, v)

	v = Vector{0xff, 0xff}
	v.Inc()
	require.Equal(t, Vector{0x00, 0x00}, v)
	v.Dec()
	require.Equal(t, Vector{0xff, 0xff}, v)
}

// The walk must visit every value of its space exactly once per period, wrapping exactly once,
// in either direction.
func TestVectorFullPeriod(t *testing.T) {
	t.Parallel()

	for _, dec := range []bool{false, true} {
		seen := make([]bool, 1<<16)
		v, wraps := Vector{0x12, 0x34}, 0
		for i := 0; i < 1<<16; i++ {
			val := binary.BigEndian.Uint16(v)
			require.Falsef(t, seen[val], "value %04x repeated at step %d (dec=%v)", val, i, dec)
			seen[val] = true
			if dec {
				v.Dec()
				if val == 0 {
					wraps++
				}
			} else {
				v.Inc()
				if val == 0xffff {
					wraps++
				}
			}
		}
		require.Equal(t, Vector{0x12, 0x34}, v)
		require.Equal(t, 1, wraps)
	}
}

func TestVectorCompare(t *testing.T) {
	t.Parallel()

	require.Equal(t, -1, Vector{0xff}.Compare(Vector{0x00, 0x00}))
	require.Equal(t, 1, Vector{0x00, 0x00}.Compare(Vector{0xff}))
	require.Equal(t, -1, Vector{0x00, 0x01}.Compare(Vector{0x00, 0x02}))
	require.Equal(t, 0, Vector{0xab, 0xcd}.Compare(Vector{0xab, 0xcd}))
	require.True(t, Vector{0xab, 0xcd}.Equal(Vector{0xab, 0xcd}))
	require.False(t, Vector{0xab, 0xcd}.Equal(Vector{0xab, 0xce}))
}

func TestVectorBits(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10100101", Vector{0xa5}.Bits())
	require.Equal(t, "0000000111111110", Vector{0x01, 0xfe}.Bits())
	require.Equal(t, "", Vector{}.Bits())
}

func TestVectorCloneIsIndependent(t *testing.T) {
	t.Parallel()

	v := Vector{0x01, 0x02}
	c := v.Clone()
	c.Inc()
	require.Equal(t, Vector{0x01, 0x02}, v)
	require.Equal(t, Vector{0x01, 0x03}, c)
}
