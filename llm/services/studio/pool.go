package studio

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrPoolClosed is returned when work is submitted after shutdown
var ErrPoolClosed = errors.New("worker pool is closed")

type poolJob struct {
	id   string
	ctx  context.Context
	run  func(context.Context) error
	done chan error
}

// Pool bounds concurrent pipeline runs to a fixed number of workers
type Pool struct {
	jobs chan poolJob
	wg   sync.WaitGroup
	log  zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers
func NewPool(workers int, logger zerolog.Logger) *Pool {
	if workers <= 0 {
		workers = 4
	}
	p := &Pool{
		jobs: make(chan poolJob),
		log:  logger.With().Str("component", "pool").Logger(),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := job.ctx.Err(); err != nil {
			job.done <- err
			continue
		}
		p.log.Debug().Str("job_id", job.id).Msg("job started")
		err := job.run(job.ctx)
		if err != nil {
			p.log.Warn().Str("job_id", job.id).Err(err).Msg("job failed")
		} else {
			p.log.Debug().Str("job_id", job.id).Msg("job completed")
		}
		job.done <- err
	}
}

// Do queues fn and waits for it to finish. The caller's context cancels
// both the wait and the run.
func (p *Pool) Do(ctx context.Context, fn func(context.Context) error) error {
	job := poolJob{
		id:   uuid.NewString(),
		ctx:  ctx,
		run:  fn,
		done: make(chan error, 1),
	}

	// The read lock is held across the send so Close cannot close the
	// channel while a submission is parked on it.
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case err := <-job.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits for in-flight jobs
func (p *Pool) Close() {
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
