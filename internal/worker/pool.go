// Package worker provides concurrent batch evaluation of job directories
// with per-backend rate limiting.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of evaluation work
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of an executed job
type Result interface {
	GetError() error
}

// Pool manages a pool of workers that execute jobs concurrently.
//
// Both the job queue and the result channel are bounded, so a producer
// must not submit every job before draining: Submit from one goroutine
// while Wait drains in another, then call Done to let workers exit.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a new worker pool with the specified number of workers.
// Workers stop when ctx is cancelled, abandoning queued jobs.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2), // Buffered to prevent blocking
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker pool
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit submits a job to the pool for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Done signals that no more jobs will be submitted. Must be called by the
// submitting goroutine after its last Submit.
func (p *Pool) Done() {
	close(p.jobQueue)
}

// Wait drains results until all workers have exited and returns them.
// Safe to call while submission is still in progress; it returns once
// Done has been called and the queue is empty, or the context cancels.
func (p *Pool) Wait() []Result {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown shuts down the worker pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
