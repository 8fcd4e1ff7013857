// Package parallel runs per-pixel work on a fixed set of goroutines.
//
// Compositing has no cross-pixel dependency, so a layer can be applied to
// disjoint row bands concurrently. Layers themselves stay strictly ordered:
// ExecuteAll returns only after every band of the current layer is done.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for band-parallel compositing.
//
// Each worker owns a queue; work is handed out round-robin.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), 4)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(p.workQueues[i])
	}

	return p
}

// worker runs queued work until the pool closes, then drains its queue.
func (p *WorkerPool) worker(queue chan func()) {
	defer p.wg.Done()

	for {
		select {
		case work := <-queue:
			work()
		case <-p.done:
			for {
				select {
				case work := <-queue:
					work()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every work item and waits for all of them to finish.
// On a closed pool the items run on the calling goroutine, so callers
// always observe completed work.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Close stops the workers after queued work has run.
// Close is safe to call multiple times but must not race with ExecuteAll.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous, non-empty bands of
// near-equal size. It returns nil when height or n is not positive.
func Bands(height, n int) []Band {
	if height <= 0 || n <= 0 {
		return nil
	}
	n = min(n, height)

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}
