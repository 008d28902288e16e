package collider

import "context"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// A worker walks one lane's candidate sequence looking for two candidates whose digests share
// their last k bytes. It owns its hash state, its cursor, and its table outright; nothing here is
// shared with any other lane.
type worker struct {
	id       int
	start    Vector
	dec      bool
	k        int
	algo     Algo
	capacity int
}

// search runs until the lane self-collides or ctx is canceled. Cancellation is cooperative,
// checked once per candidate; the worst-case latency is one fingerprint computation. The table is
// dropped when search returns, whatever the outcome.
func (w *worker) search(ctx context.Context) (*Result, error) {
	h, err := w.algo.New()
	if err != nil {
		return nil, err
	}
	table := NewTable(w.capacity)
	cur := w.start.Clone()
	sum := make([]byte, 0, DigestSize)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		h.Reset()
		h.Write(cur)
		sum = h.Sum(sum[:0])
		fp := Vector(sum[len(sum)-w.k:])

		if pre, ok := table.Probe(fp, cur); ok {
			if !pre.Equal(cur) {
				return &Result{K: w.k, Lane: w.id, X: pre, Y: cur.Clone()}, nil
			}
			/* The walk wrapped all the way around to a stored candidate. Keep going. */
		}
		if w.dec {
			cur.Dec()
		} else {
			cur.Inc()
		}
	}
}
