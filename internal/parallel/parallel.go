// Package parallel provides a fork-join parallel-for over integer ranges.
//
// Row-parallel kernels in this repository partition work by image row: each
// row reads and writes a disjoint range of the flat backing slice, so bodies
// need no synchronization and results are deterministic for any worker count.
package parallel

import (
	"runtime"
	"sync"
)

// For executes body(i) once for every i in [start, end), splitting the range
// into contiguous chunks across at most runtime.NumCPU() goroutines. It
// returns only after every body call has completed.
//
// Bodies must not touch state shared with another index unless they
// synchronize it themselves. Small ranges run inline on the caller.
func For(start, end int, body func(i int)) {
	n := end - start
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := start; i < end; i++ {
			body(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := start + w*chunk
		hi := lo + chunk
		if hi > end {
			hi = end
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				body(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
