package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversRangeExactlyOnce(t *testing.T) {
	const start, end = 3, 1027

	hits := make([]int32, end)
	For(start, end, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i := 0; i < start; i++ {
		if hits[i] != 0 {
			t.Fatalf("index %d outside range was visited", i)
		}
	}
	for i := start; i < end; i++ {
		if hits[i] != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, hits[i])
		}
	}
}

func TestForEmptyRange(t *testing.T) {
	called := false
	For(5, 5, func(i int) { called = true })
	For(7, 2, func(i int) { called = true })
	if called {
		t.Fatal("body called for empty range")
	}
}

func TestForSingleElement(t *testing.T) {
	var count int32
	For(4, 5, func(i int) {
		if i != 4 {
			t.Errorf("unexpected index %d", i)
		}
		atomic.AddInt32(&count, 1)
	})
	if count != 1 {
		t.Fatalf("body called %d times, want 1", count)
	}
}

func TestForDisjointRowWrites(t *testing.T) {
	// Each index owns a disjoint slice range, mirroring how row-parallel
	// kernels use For. Run with -race to verify no overlap.
	const rows, width = 64, 32
	buf := make([]float64, rows*width)

	For(0, rows, func(y int) {
		for x := 0; x < width; x++ {
			buf[y*width+x] = float64(y)
		}
	})

	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			if buf[y*width+x] != float64(y) {
				t.Fatalf("buf[%d,%d] = %v, want %d", x, y, buf[y*width+x], y)
			}
		}
	}
}
