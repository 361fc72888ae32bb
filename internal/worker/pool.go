// worker/pool.go
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by a pool worker.
type Job[T any] func(ctx context.Context) T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines and publishes
// their outputs on Results. Results arrive in completion order, not
// submission order; callers correlate them through JobID.
type Pool[T any] struct {
	ctx     context.Context
	jobs    chan jobWrapper[T]
	results chan Result[T]

	wg        sync.WaitGroup
	closeOnce sync.Once
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount workers. bufferSize bounds both the job queue and
// the result queue, so a caller that submits more than bufferSize jobs must
// drain Results concurrently.
func NewPool[T any](ctx context.Context, workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		ctx:     ctx,
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		output := job.fn(p.ctx)
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
		}
	}
}

// Submit queues a job. It blocks while the queue is full and gives up with
// the context error once the pool's context is cancelled.
func (p *Pool[T]) Submit(id string, fn Job[T]) error {
	select {
	case p.jobs <- jobWrapper[T]{id: id, fn: fn}:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Close stops accepting jobs. Results is closed after the queued jobs finish.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}
