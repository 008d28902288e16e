package collider

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// A Result is one k-collision: two distinct preimages whose digests agree on their last K bytes.
// Lane records which worker found it.
type Result struct {
	K    int
	Lane int
	X, Y Vector
}

// A ResultStore durably records one collision per k value. Put failing is survivable; the session
// logs it and moves on, because the pair has already been reported through the progress output.
type ResultStore interface {
	Put(res Result) error
}

// A Session owns the whole escalation loop: it repeats the lane race for k from Config.StartK up
// through 32, shifting every lane's starting vector further between rounds so that later rounds,
// and later runs of the whole program, explore fresh space.
type Session struct {
	cfg   Config
	ivs   []Vector
	mult  int
	maxK  int
	store ResultStore
	log   logrus.FieldLogger
}

// NewSession validates cfg and lays out the lane starting vectors. store and log may be nil, in
// which case results are only logged and logging is discarded, respectively.
func NewSession(cfg Config, store ResultStore, log logrus.FieldLogger) (*Session, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	ivs := startVectors(cfg.Lanes, cfg.Width)
	if cfg.Seed != nil {
		offsetVectors(ivs, *cfg.Seed)
	}
	return &Session{cfg: cfg, ivs: ivs, mult: cfg.Multiplier, maxK: MaxK, store: store, log: log}, nil
}

// Run drives rounds until k exceeds 32 or ctx is canceled. Every round either yields exactly one
// collision or fails the whole session; rounds are never retried.
func (s *Session) Run(ctx context.Context) error {
	for k := s.cfg.StartK; k <= s.maxK; k++ {
		s.advance()
		s.log.WithFields(logrus.Fields{
			"k": k, "lanes": s.cfg.Lanes, "capacity": s.cfg.Capacity, "algo": s.cfg.Algo,
		}).Info("round started")

		res, err := race(ctx, s.cfg, s.ivs, k)
		if err != nil {
			return err
		}
		if s.store != nil {
			if err := s.store.Put(res); err != nil {
				s.log.WithError(err).WithField("k", k).Error("failed to persist collision")
			}
		}
		s.log.WithFields(logrus.Fields{
			"k": k, "lane": res.Lane, "x": res.X.Bits(), "y": res.Y.Bits(),
		}).Info("round finished")

		s.mult++
	}
	return nil
}

// advance jumps every lane's starting vector by multiplier × stride counter increments, then logs
// the new values. It runs before the first round too, honoring a caller-supplied multiplier as a
// starting offset.
func (s *Session) advance() {
	steps := s.mult * advanceStride
	for i, iv := range s.ivs {
		advanceVector(iv, steps)
		s.log.WithFields(logrus.Fields{"lane": i, "iv": iv.String()}).Info("starting vector advanced")
	}
}
