package main

import (
	. "fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	collider "github.com/Vrel/Sha-256-Collider"
	"github.com/dterei/gotsc"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Statz measures the one number the whole search lives or dies by: how many candidates a single
// lane can fingerprint, probe, and step per second, at several table capacities and for each
// digest primitive. On amd64 it also derives cycles per probe from the TSC.

var capacities = [...]int{1 << 10, 1 << 16, 1 << 20, 1 << 22}
var capacity, calltime = 0, gotsc.TSCOverhead()
var algo = collider.SHA256

func benchmarkProbe(b *testing.B) {
	h, err := algo.New()
	if err != nil {
		b.Fatal(err)
	}
	table := collider.NewTable(capacity)
	cur := collider.NewVector(collider.DefaultWidth)
	b.SetBytes(1) /* One candidate per "byte", so B/s reads directly as probes/s. */
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		fp := collider.Fingerprint(h, cur, 16)
		table.Probe(fp, cur)
		cur.Inc()
	}
}

func benchAlg() {
	const s = len(capacities)
	rates, cycles, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range capacities {
		capacity = v

		totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
		if calltime > 0 {
			go func() {
				for {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(benchmarkProbe)
		mut.Lock()
		totalHz *= 1000

		rates[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* probes/s */
		cycles[i] = float64(totalHz) / float64(polls) / rates[i]
		rates[i] /= 1e6 /* Mprobes/s */
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	Println("Rate  " + fmtFloats(rates...) + "   Mprobes/s")
	if calltime > 0 {
		Println("      " + fmtFloats(cycles...) + "   cycles/probe")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n\n"+
		"            1K       64K        1M        4M   (table capacity)\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	Println("github.com/minio/sha256-simd")
	algo = collider.SHA256
	benchAlg()

	Println("github.com/zeebo/blake3")
	algo = collider.BLAKE3
	benchAlg()

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
