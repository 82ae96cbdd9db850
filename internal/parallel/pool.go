// Package parallel provides the concurrency utilities behind parallel
// coloring search: a bounded worker pool for evaluating top-level
// search branches, and a deterministic collector that reports the
// lowest-indexed successful branch.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been
// shut down.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")

// WorkerPool manages a fixed set of goroutines that evaluate search
// branches. The task channel is buffered so submission applies
// backpressure instead of growing unbounded when branches outnumber
// workers.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool with the given number of workers.
// Non-positive counts default to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit queues a task for execution. Blocks while the pool is full
// until a worker frees up, the context is cancelled, or the pool shuts
// down.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the pool, waiting for in-flight tasks to finish. The
// task channel stays open so a racing Submit never panics; tasks queued
// after shutdown are simply never run.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}

// BranchResults accumulates the outcomes of a bounded, indexed set of
// parallel search branches and reports the lowest-indexed success.
// Branch indices follow candidate order, so "lowest index wins" makes a
// parallel search return exactly what a sequential search would.
//
// A branch reports one of three outcomes: a non-nil value (success), a
// non-nil error (abnormal failure), or neither (clean failure, e.g. an
// exhausted subtree).
type BranchResults struct {
	mu     sync.Mutex
	values []interface{}
	ok     []bool
	errs   []error
}

// NewBranchResults creates a collector for n branches.
func NewBranchResults(n int) *BranchResults {
	return &BranchResults{
		values: make([]interface{}, n),
		ok:     make([]bool, n),
		errs:   make([]error, n),
	}
}

// Report records branch i's outcome. Safe for concurrent use; each
// branch must report at most once.
func (r *BranchResults) Report(i int, value interface{}, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.errs[i] = err
		return
	}
	if value != nil {
		r.values[i] = value
		r.ok[i] = true
	}
}

// First returns the value of the lowest-indexed successful branch. When
// no branch succeeded it returns the lowest-indexed abnormal error, or
// a nil error if every branch failed cleanly.
func (r *BranchResults) First() (interface{}, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.values {
		if r.ok[i] {
			return r.values[i], true, nil
		}
	}
	for i := range r.errs {
		if r.errs[i] != nil {
			return nil, false, r.errs[i]
		}
	}
	return nil, false, nil
}
