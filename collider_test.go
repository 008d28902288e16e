package collider

import (
	"context"
	"errors"
	"testing"
	"time"

	sha256 "github.com/minio/sha256-simd"
	"github.com/stretchr/testify/require"
)

func TestWorkerFindsCollision(t *testing.T) {
	t.Parallel()

	// The birthday bound for an 8-bit fingerprint space is ~20 draws, so a 1000-entry table is
	// never the limiting factor here.
	w := &worker{start: NewVector(6), k: 1, algo: SHA256, capacity: 1000}
	res, err := w.search(context.Background())
	require.NoError(t, err)

	require.Len(t, res.X, 6)
	require.Len(t, res.Y, 6)
	require.False(t, res.X.Equal(res.Y))
	hx, hy := sha256.Sum256(res.X), sha256.Sum256(res.Y)
	require.Equal(t, hx[DigestSize-1], hy[DigestSize-1])
}

func TestWorkerDeterminism(t *testing.T) {
	t.Parallel()

	run := func() *Result {
		w := &worker{start: NewVector(6), k: 1, algo: SHA256, capacity: 1000}
		res, err := w.search(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, a.X, b.X)
	require.Equal(t, a.Y, b.Y)
}

func TestWorkerDecrementWalk(t *testing.T) {
	t.Parallel()

	w := &worker{start: NewVector(6), dec: true, k: 1, algo: SHA256, capacity: 1000}
	res, err := w.search(context.Background())
	require.NoError(t, err)
	hx, hy := sha256.Sum256(res.X), sha256.Sum256(res.Y)
	require.Equal(t, hx[DigestSize-1], hy[DigestSize-1])
}

func TestWorkerCancellation(t *testing.T) {
	t.Parallel()

	/* k=32 cannot complete in any reasonable time, so only cancellation ends this search. */
	w := &worker{start: NewVector(6), k: 32, algo: SHA256, capacity: 1000}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		res, err := w.search(ctx)
		if res != nil {
			err = errors.New("canceled lane published a result")
		}
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not observe cancellation")
	}
}

func TestRaceReturnsValidCollision(t *testing.T) {
	t.Parallel()

	cfg := Config{Lanes: 2, StartK: 1, Width: 6, Multiplier: 1, Capacity: 2000, Algo: SHA256}
	res, err := race(context.Background(), cfg, startVectors(2, 6), 1)
	require.NoError(t, err)

	require.False(t, res.X.Equal(res.Y))
	h, err := SHA256.New()
	require.NoError(t, err)
	require.Equal(t, Fingerprint(h, res.X, 1), Fingerprint(h, res.Y, 1))
}

func TestRaceManyLanes(t *testing.T) {
	t.Parallel()

	cfg := Config{Lanes: 8, StartK: 2, Width: 6, Multiplier: 1, Capacity: 5000, Algo: SHA256}
	res, err := race(context.Background(), cfg, startVectors(8, 6), 2)
	require.NoError(t, err)

	h, err := SHA256.New()
	require.NoError(t, err)
	require.Equal(t, Fingerprint(h, res.X, 2), Fingerprint(h, res.Y, 2))
}

func TestRaceObservesParentCancellation(t *testing.T) {
	t.Parallel()

	cfg := Config{Lanes: 2, StartK: 32, Width: 6, Multiplier: 1, Capacity: 1000, Algo: SHA256}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := race(ctx, cfg, startVectors(2, 6), 32)
	require.True(t, errors.Is(err, context.Canceled))
	require.False(t, errors.Is(err, ErrNoCollision))
}

func BenchmarkWorkerProbe(b *testing.B) {
	h, _ := SHA256.New()
	table := NewTable(b.N)
	cur := NewVector(6)
	sum := make([]byte, 0, DigestSize)
	b.SetBytes(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		h.Reset()
		h.Write(cur)
		sum = h.Sum(sum[:0])
		table.Probe(Vector(sum[DigestSize-16:]), cur)
		cur.Inc()
	}
}
