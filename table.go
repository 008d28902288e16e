package collider

import "github.com/zeebo/xxh3"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// A Table is the bounded memory of one search lane: fingerprint → first preimage seen to produce
// it. Keys are bucketed by their xxh3 value; entries within a bucket are told apart byte-wise, so
// a 64-bit bucket clash never conflates two distinct fingerprints.

type tableEntry struct {
	fp  Vector
	pre Vector
}

type Table struct {
	limit   int
	size    int
	buckets map[uint64][]tableEntry
}

// NewTable returns an empty Table that will hold at most capacity entries.
func NewTable(capacity int) *Table {
	return &Table{limit: capacity, buckets: make(map[uint64][]tableEntry)}
}

func (t *Table) Len() int { return t.size }

func (t *Table) Cap() int { return t.limit }

// Probe looks fp up; on a hit it returns the stored preimage. On a miss it records fp → pre while
// the table is below capacity and reports no hit either way. A stored entry is never overwritten:
// the first preimage to produce a fingerprint is the one every later candidate is compared against.
func (t *Table) Probe(fp, pre Vector) (Vector, bool) {
	key := xxh3.Hash(fp)
	chain := t.buckets[key]
	for i := range chain {
		if chain[i].fp.Equal(fp) {
			return chain[i].pre, true
		}
	}
	if t.size < t.limit {
		t.buckets[key] = append(chain, tableEntry{fp: fp.Clone(), pre: pre.Clone()})
		t.size++
	}
	return nil, false
}
