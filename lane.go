package collider

import "github.com/aead/chacha20/chacha"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Lane starting vectors differ at byte len-4, keeping every lane's walk in its own region of the
// candidate space. The leading len-3 bytes form the round counter that advancement and seeding
// arithmetic operate on; the trailing 3 bytes are covered by the walk itself.

// laneMarks holds the distinguishing byte for each of the eight possible lanes.
var laneMarks = [8]byte{0x00, 0x06, 0x01, 0x02, 0x03, 0x04, 0x05, 0x07}

// startVectors returns one distinct all-zero-but-marked starting vector per lane.
func startVectors(lanes, width int) []Vector {
	ivs := make([]Vector, lanes)
	for i := range ivs {
		iv := NewVector(width)
		iv[width-4] = laneMarks[i]
		ivs[i] = iv
	}
	return ivs
}

// offsetVectors shifts every lane's round counter by one session-wide offset expanded from seed
// with a ChaCha20 keystream. All lanes move by the same amount, so their pairwise spacing, and
// with it the disjointness of their walks, is preserved.
func offsetVectors(ivs []Vector, seed [32]byte) {
	if len(ivs) == 0 {
		return
	}
	off := make([]byte, len(ivs[0])-3)
	nonce := make([]byte, chacha.NonceSize)
	chacha.XORKeyStream(off, off, nonce, seed[:], 20)
	for _, iv := range ivs {
		addCounter(iv, off)
	}
}

// addCounter adds n, big-endian, into the round counter of v. len(n) must equal len(v)-3;
// overflow falls off the leading byte.
func addCounter(v Vector, n []byte) {
	carry := 0
	for i := len(v) - 4; i >= 0; i-- {
		sum := int(v[i]) + int(n[i]) + carry
		v[i] = byte(sum)
		carry = sum >> 8
	}
}

// advanceVector jumps v forward by steps single increments of its round counter, each one a
// 2^24 stride in candidate space, comfortably past anything a prior round's walk stored.
func advanceVector(v Vector, steps int) {
	for j := 0; j < steps; j++ {
		for i := len(v) - 4; i >= 0; i-- {
			v[i]++
			if v[i] != 0 {
				break
			}
		}
	}
}
