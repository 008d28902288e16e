package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"

var pLanes, pStartK, pWidth, pAdvance, pCapacity uint
var pAlgo, pOut, pSeed string
var pHelp, pNoCodes, pNoCodesDefault, pQuiet, pVerbose bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	UintVarP(&pAdvance, "advance", "a", 1,
		purp+"set the initial starting-vector advance multiplier"+zero)

	StringVar(&pAlgo, "algo", "sha256",
		purp+"select the digest primitive (sha256 or blake3)"+zero)

	UintVarP(&pCapacity, "capacity", "c", 5000000,
		purp+"cap each lane's fingerprint table at this many entries;"+zero+
			n+purp+"this is the dominant memory-sizing knob"+zero)

	UintVarP(&pStartK, "start-k", "k", 1,
		purp+"begin the search at this k-collision width (1-32)"+zero)

	UintVarP(&pLanes, "lanes", "j", 2,
		purp+"run this many concurrent search lanes (2, 6, or 8)"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes"+zero)

	StringVarP(&pOut, "out", "o", ".",
		purp+"write collision records into this directory"+zero)

	Bool("quiet", false,
		purp+"suppress progress output and print ONLY errors"+zero+
			n+"(enables --no-codes)")

	StringVar(&pSeed, "seed", "",
		purp+"shift every lane's starting vector by an offset derived"+zero+
			n+purp+"from this 64-digit hex seed"+zero)

	BoolVarP(&pVerbose, "verbose", "v", false,
		purp+"log per-candidate diagnostics where available"+zero)

	UintVarP(&pWidth, "width", "w", 6,
		purp+"set candidate preimage length in bytes (minimum 4)"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
