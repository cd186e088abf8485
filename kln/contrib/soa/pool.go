// Copyright 2025 go-klein Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soa

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/simd"
)

// minChunk is the smallest batch handed to a single worker. Smaller
// batches are transformed on the calling goroutine.
const minChunk = 2048

// Pool is a persistent set of workers that split batch transforms into
// contiguous chunks. Workers are spawned once and reused until Close.
//
// A nil *Pool is valid and runs everything on the calling goroutine.
type Pool struct {
	workers   int
	workC     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool starts a pool with the given number of workers, or GOMAXPROCS
// workers if workers <= 0.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		workC:   make(chan task, workers*2),
	}
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// Workers returns the number of workers, 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers once pending work completes. A closed pool keeps
// working sequentially. Calling Close more than once is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor calls fn over disjoint ranges covering [0, n). Range
// boundaries fall on multiples of the vector width so that only the last
// chunk has a partial tail.
func (p *Pool) parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() || n < 2*minChunk {
		fn(0, n)
		return
	}

	lanes := hwy.MaxLanes[float32]()
	workers := min(p.workers, n/minChunk)
	chunk := (n + workers - 1) / workers
	chunk = (chunk + lanes - 1) / lanes * lanes

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{fn: func() { fn(start, end) }, barrier: &wg}
	}
	wg.Wait()
}

// TransformPoints is like the package-level TransformPoints but splits
// large batches across the workers.
func (p *Pool) TransformPoints(m kln.Motor, dst, src Points) {
	n := src.Len()
	dst = dst.Slice(0, n)
	if !simd.Accelerated() {
		transformPointsScalar(m, dst, src)
		return
	}
	mat := PointMatrix(m)
	p.parallelFor(n, func(start, end int) {
		s, d := src.Slice(start, end), dst.Slice(start, end)
		BaseTransformPoints(&mat, s.X, s.Y, s.Z, s.W, d.X, d.Y, d.Z, d.W)
	})
}

// TransformPlanes is like the package-level TransformPlanes but splits
// large batches across the workers.
func (p *Pool) TransformPlanes(m kln.Motor, dst, src Planes) {
	n := src.Len()
	dst = dst.Slice(0, n)
	if !simd.Accelerated() {
		transformPlanesScalar(m, dst, src)
		return
	}
	mat := PlaneMatrix(m)
	p.parallelFor(n, func(start, end int) {
		s, d := src.Slice(start, end), dst.Slice(start, end)
		BaseTransformPlanes(&mat, s.A, s.B, s.C, s.D, d.A, d.B, d.C, d.D)
	})
}
