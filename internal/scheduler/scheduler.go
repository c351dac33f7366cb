package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/worker"
)

const logMsgJobDropped = "Scheduled job dropped"

// Enqueuer accepts jobs without blocking.
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

// Scheduler hands jobs to a worker pool at fixed intervals.
type Scheduler struct {
	pool     Enqueuer
	ctx      context.Context
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a scheduler. ctx is used for logging only.
func New(ctx context.Context, pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		ctx:  ctx,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop is called. A tick is
// skipped when the pool queue is full.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	err := s.pool.TryEnqueue(job)
	if err == nil {
		return
	}
	log := logger.FromContext(s.ctx)
	if errors.Is(err, worker.ErrPoolStopped) {
		log.Debug(logMsgJobDropped, "error", err)
		return
	}
	log.Warn(logMsgJobDropped, "error", err)
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
