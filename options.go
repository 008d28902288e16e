package collider

import (
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var (
	// ErrInvalidLaneCount is returned when the lane count is not 2, 6, or 8.
	ErrInvalidLaneCount = errors.New("lane count must be 2, 6, or 8")

	// ErrInvalidK is returned when the starting k lies outside [1,32].
	ErrInvalidK = errors.New("starting k must be in [1,32]")

	// ErrInvalidMultiplier is returned when the advance multiplier is not positive.
	ErrInvalidMultiplier = errors.New("advance multiplier must be greater than 0")

	// ErrInvalidCapacity is returned when the table capacity is not positive.
	ErrInvalidCapacity = errors.New("table capacity must be greater than 0")

	// ErrInvalidWidth is returned when the preimage width is too small to carry a lane mark and a
	// round counter.
	ErrInvalidWidth = errors.New("preimage width must be at least 4 bytes")
)

const (
	// DefaultLanes runs one searching worker beside the coordinator.
	DefaultLanes = 2

	// DefaultWidth is the canonical 6-byte candidate length.
	DefaultWidth = 6

	// DefaultCapacity bounds each lane's table to five million entries.
	DefaultCapacity = 5_000_000

	// DefaultMultiplier leaves the first round's starting vectors one stride from their bases.
	DefaultMultiplier = 1

	// advanceStride is the fixed number of counter increments per multiplier unit between rounds.
	advanceStride = 6

	// MaxK is the largest collision width searched for; a session ends after reaching it.
	MaxK = DigestSize
)

// Config carries every session-wide parameter explicitly; nothing in this package reads mutable
// package state.
type Config struct {
	// Lanes is the number of concurrently searching workers: 2, 6, or 8.
	Lanes int

	// StartK is the k value of the first round, in [1,32].
	StartK int

	// Width is the byte length of every candidate preimage.
	Width int

	// Multiplier scales how far starting vectors jump between rounds; it grows by one after every
	// completed round.
	Multiplier int

	// Capacity bounds each lane's table and is the dominant memory-sizing knob of the whole
	// search.
	Capacity int

	// Algo selects the digest primitive; empty means SHA-256.
	Algo Algo

	// Seed, when non-nil, deterministically shifts every lane's starting vector by one
	// keystream-derived session offset.
	Seed *[32]byte
}

// withDefaults fills zero fields with the canonical configuration.
func (c Config) withDefaults() Config {
	if c.Lanes == 0 {
		c.Lanes = DefaultLanes
	}
	if c.StartK == 0 {
		c.StartK = 1
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Multiplier == 0 {
		c.Multiplier = DefaultMultiplier
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	return c
}

// validate rejects any parameter a round could not be run under. It runs before the first lane
// starts, so a bad configuration never costs a single hash.
func (c Config) validate() error {
	switch c.Lanes {
	case 2, 6, 8:
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidLaneCount, c.Lanes)
	}
	if c.StartK < 1 || c.StartK > MaxK {
		return fmt.Errorf("%w: got %d", ErrInvalidK, c.StartK)
	}
	if c.Width < 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.Width)
	}
	if c.Multiplier < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMultiplier, c.Multiplier)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Capacity)
	}
	_, err := c.Algo.New()
	return err
}
