// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for filling and
// transforming rasters in parallel.
//
// The units of parallelism are the disjoint patches produced by the
// tiling generators (Tiles, Rows, Profiles, Sections): each element of
// the parent raster belongs to exactly one such patch, so concurrent
// writes to distinct patches never race. A Pool is created once and
// reused across many operations.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	workerpool.ForEachPatch(pool, raster.Tiles(linx.Position{256, 256}),
//		func(tile *linx.Patch[float32]) {
//			tile.Apply(normalize)
//		})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/linxgo/linx/linx"
)

// Pool is a persistent worker pool. Workers are spawned once at
// creation and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, or GOMAXPROCS
// workers when numWorkers is not positive.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes; calling Close
// again is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach executes fn(i) for each i in [0, n) with atomic work
// stealing, which balances the load when the work per item varies (e.g.
// edge tiles clipped smaller than interior ones). It blocks until all
// work completes. A closed pool falls back to sequential execution.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ForEachRange executes fn(start, end) over contiguous chunks covering
// [0, n), one chunk per worker. Prefer it over ForEach when items are
// uniform and cheap, to amortize the per-item dispatch.
func (p *Pool) ForEachRange(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ForEachPatch runs fn over each patch in parallel. The patches must be
// disjoint views of their parent, as produced by Tiles, Rows, Profiles
// or Sections.
func ForEachPatch[T linx.Numeric](p *Pool, patches []*linx.Patch[T], fn func(patch *linx.Patch[T])) {
	p.ForEach(len(patches), func(i int) {
		fn(patches[i])
	})
}
