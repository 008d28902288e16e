package main

import (
	"context"
	"encoding/hex"
	"errors"
	. "fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode/utf8"

	collider "github.com/Vrel/Sha-256-Collider"
	"github.com/p7r0x7/vainpath"
	"github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This program is a command-line interface for the collision-search engine: it hunts pairs of
// byte strings whose digests agree on their last k bytes, for k escalating from a configured
// start up through 32, writing each discovered pair to its own record file.

const success, failure, invalid = 0, 1, 2

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "collide" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Brute-force search for partial digest collisions.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-j {2|6|8}] [-k <uint>] [-a <uint>] [-c <uint>] [-w <uint>]"+n,
		spaces, "[--algo <name>] [--seed <hex>] [--quiet|no-codes] [-o PATH]"+n+n+
			"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"Two byte strings X and Y k-collide when the last k bytes of their digests"+n+
		"are the same. Each discovered pair lands in "+und+collider.FilePrefix+"<k>.txt"+zero+n+
		"under the output directory, one file per k; the search then restarts one k"+n+
		"higher, until k=32. A round runs until it succeeds; there is no timeout."+n)
}

func program() int {
	if pHelp {
		help()
		return success
	}

	log := logrus.New()
	log.SetOutput(os.Stdout)
	switch {
	case pQuiet:
		log.SetLevel(logrus.ErrorLevel)
	case pVerbose:
		log.SetLevel(logrus.DebugLevel)
	}
	if pNoCodes {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	/* Zero-valued engine config fields mean "default", so explicit zeroes are rejected here. */
	switch {
	case pStartK < 1 || pStartK > 32:
		Fprint(os.Stderr, purp, "Starting k must be an integer in [1,32].", zero, n)
		return invalid
	case pLanes != 2 && pLanes != 6 && pLanes != 8:
		Fprint(os.Stderr, purp, "Lane count must be 2, 6, or 8.", zero, n)
		return invalid
	case pAdvance < 1:
		Fprint(os.Stderr, purp, "Advance multiplier must be an integer > 0.", zero, n)
		return invalid
	case pCapacity < 1:
		Fprint(os.Stderr, purp, "Table capacity must be an integer > 0.", zero, n)
		return invalid
	case pWidth < 4:
		Fprint(os.Stderr, purp, "Preimage width must be at least 4 bytes.", zero, n)
		return invalid
	}

	cfg := collider.Config{
		Lanes:      int(pLanes),
		StartK:     int(pStartK),
		Width:      int(pWidth),
		Multiplier: int(pAdvance),
		Capacity:   int(pCapacity),
		Algo:       collider.Algo(pAlgo),
	}
	if pSeed != "" {
		raw, err := hex.DecodeString(pSeed)
		if err != nil || len(raw) != 32 {
			Fprint(os.Stderr, purp, "Seed must be exactly 64 hexadecimal digits.", zero, n)
			return invalid
		}
		seed := new([32]byte)
		copy(seed[:], raw)
		cfg.Seed = seed
	}

	sess, err := collider.NewSession(cfg, collider.DirStore{Dir: pOut}, log)
	if err != nil {
		Fprint(os.Stderr, purp, err.Error(), zero, n)
		return invalid
	}

	/* An interrupt cancels every live lane cooperatively; each notices within one candidate. */
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sess.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("search interrupted")
			return failure
		}
		log.WithError(err).Error("search failed")
		return failure
	}
	return success
}
