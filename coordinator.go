package collider

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrNoCollision reports that every lane terminated without a result even though nothing canceled
// the round from outside. Cancellation is only ever issued after some lane succeeds, so this is an
// internal fault, not a configuration problem.
var ErrNoCollision = errors.New("no lane produced a collision")

// errFound is the sentinel a winning lane returns to pull the plug on the rest of its group.
var errFound = errors.New("collision found")

// race runs one worker per lane and returns the first collision any of them finds. The instant a
// lane succeeds the shared group context is canceled; every other lane observes that within one
// candidate evaluation and exits without publishing. Each lane writes only its own slot, and the
// slots are read only after every lane has terminated, so no slot is ever contended.
func race(parent context.Context, cfg Config, ivs []Vector, k int) (Result, error) {
	g, ctx := errgroup.WithContext(parent)
	slots := make([]*Result, cfg.Lanes)

	for i := 0; i < cfg.Lanes; i++ {
		i := i
		w := &worker{
			id:       i,
			start:    ivs[i].Clone(),
			dec:      cfg.Lanes == 2, /* Two-lane sessions walk downward; wider ones walk upward. */
			k:        k,
			algo:     cfg.Algo,
			capacity: cfg.Capacity,
		}
		g.Go(func() error {
			res, err := w.search(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				return err
			}
			slots[i] = res
			return errFound
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errFound) {
		return Result{}, err
	}
	for _, res := range slots {
		/* At most one slot is populated in the common case; a lane finishing concurrently with
		cancellation may fill a second, and either pair is a valid collision for this k. */
		if res != nil {
			return *res, nil
		}
	}
	if err := parent.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, ErrNoCollision
}
