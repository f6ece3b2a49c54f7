package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/ItemForge_Go/internal/logger"
)

// ErrPoolStopped is returned when a job is enqueued after Stop.
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed set of workers. Jobs are taken from one FIFO
// queue; with a single worker they also complete in enqueue order.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  max(workers, 1),
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for range p.workers {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the queue is closed and drained
func (p *Pool) worker() {
	defer p.wg.Done()
	ctx := context.Background()
	for job := range p.jobQueue {
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len returns the number of jobs waiting for a worker.
func (p *Pool) Len() int { return len(p.jobQueue) }

// Stop refuses new jobs and waits for the queued ones to finish, or for ctx
// to expire.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobQueue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
