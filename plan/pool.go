package plan

import "sync"

type jobFunc[T any, R any] func(job T) R

// workerPool runs jobFunc over queued jobs on a fixed number of goroutines.
type workerPool[T any, R any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan R
	wg         sync.WaitGroup
}

// newWorkerPool sizes both channels to queueSize; callers that enqueue at
// most queueSize jobs never block.
func newWorkerPool[T any, R any](numWorkers, queueSize int) *workerPool[T, R] {
	return &workerPool[T, R]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, queueSize),
		results:    make(chan R, queueSize),
	}
}

func (wp *workerPool[T, R]) worker(fn jobFunc[T, R]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- fn(job)
	}
}

func (wp *workerPool[T, R]) start(fn jobFunc[T, R]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(fn)
	}
}

func (wp *workerPool[T, R]) addJob(job T) {
	wp.jobQueue <- job
}

// close stops accepting jobs; workers drain what is queued.
func (wp *workerPool[T, R]) close() {
	close(wp.jobQueue)
}

// wait blocks until every worker exits, then closes results.
func (wp *workerPool[T, R]) wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *workerPool[T, R]) collect() <-chan R {
	return wp.results
}
