// Package parallel provides the worker pool and row-stripe partitioning used
// to scale one image on several goroutines.
//
// Stripes of the same source image are independent: each re-derives the
// blend state of the row above it, so workers only share the read-only source
// and write disjoint row ranges of the destination.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs batches of stripe jobs on a fixed set of goroutines.
//
// All workers pull from one shared queue, so a worker that finishes a flat
// stripe early picks up the next pending one.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	jobs    chan func()

	// mu is held for reading by ExecuteAll for the whole batch and for
	// writing by Close, so jobs is never closed under a sender.
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
	}
	for range workers {
		p.wg.Go(p.run)
	}
	return p
}

func (p *WorkerPool) run() {
	for job := range p.jobs {
		job()
	}
}

// ExecuteAll runs every item of work and returns when all have finished.
// After Close the items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		for _, fn := range work {
			fn()
		}
		return
	}

	var batch sync.WaitGroup
	batch.Add(len(work))
	for _, fn := range work {
		p.jobs <- func() {
			defer batch.Done()
			fn()
		}
	}
	batch.Wait()
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
