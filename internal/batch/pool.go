package batch

import (
	"runtime"
	"sync"
)

// WorkerPool fans jobs out to a fixed set of goroutines and collects
// one result per job. Channels are sized for the job count, so Submit
// never blocks when every job is submitted before collection.
type WorkerPool[Job any, Result any] struct {
	workers int
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewWorkerPool sizes a pool for jobCount jobs. A non-positive worker
// count means one worker per CPU. The pool never runs more workers
// than there are jobs.
func NewWorkerPool[Job any, Result any](workers, jobCount int) *WorkerPool[Job, Result] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if jobCount > 0 {
		workers = min(workers, jobCount)
	}

	return &WorkerPool[Job, Result]{
		workers: workers,
		jobs:    make(chan Job, jobCount),
		results: make(chan Result, jobCount),
	}
}

// Start launches the workers. Each job is passed to fn and its return
// value is delivered on the results channel.
func (p *WorkerPool[Job, Result]) Start(fn func(Job) Result) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.results <- fn(job)
			}
		}()
	}
}

// Submit queues one job.
func (p *WorkerPool[Job, Result]) Submit(job Job) {
	p.jobs <- job
}

// Close stops intake; the results channel is closed once the last
// worker drains its queue.
func (p *WorkerPool[Job, Result]) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// Results returns the channel worker outputs arrive on.
func (p *WorkerPool[Job, Result]) Results() <-chan Result {
	return p.results
}
