// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
)

// sideEffectQueue runs fire-and-forget jobs in enqueue order, one at a time.
// Jobs never gate the caller; failures are logged and never retried.
// Each job is sent with the credential attached when it was enqueued.
type sideEffectQueue struct {
	mu     sync.Mutex
	tail   chan struct{} // closed once the last enqueued job has finished
	wg     sync.WaitGroup
	rc     *entity.RequestContext
	logger *slog.Logger
}

func newSideEffectQueue(rc *entity.RequestContext, logger *slog.Logger) *sideEffectQueue {
	done := make(chan struct{})
	close(done)

	return &sideEffectQueue{tail: done, rc: rc, logger: logger}
}

// Enqueue schedules job after every previously enqueued job.
// The job keeps ctx values (request id, logger) but not its cancellation.
func (q *sideEffectQueue) Enqueue(ctx context.Context, name string, job func(ctx context.Context) error) {
	done := make(chan struct{})

	q.mu.Lock()
	prev := q.tail
	q.tail = done
	q.wg.Add(1)
	q.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	if q.rc != nil {
		ctx = q.rc.Pin(ctx)
	}

	go func() {
		defer q.wg.Done()
		defer close(done)

		<-prev
		q.run(ctx, name, job)
	}()
}

func (q *sideEffectQueue) run(ctx context.Context, name string, job func(ctx context.Context) error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, q.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Side effect panicked", slog.String("job", name), slog.Any("error", fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := job(ctx); err != nil {
		logger.Error("Side effect failed", slog.String("job", name), slog.Any("error", err))
	}
}

// Wait blocks until every job enqueued so far has finished.
func (q *sideEffectQueue) Wait() {
	q.wg.Wait()
}
