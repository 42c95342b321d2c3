// Package taskrunner runs compilation tasks on a bounded in-process worker
// pool. It is the default execution backend; the asynq queue replaces it when
// a Redis broker is configured.
package taskrunner

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"supercut/internal/dto"
	"supercut/internal/service"
	"supercut/log"
)

type CompilationPayload struct {
	TaskID string
	Req    dto.CreateCompilationReq
}

var ErrQueueFull = errors.New("compilation queue is full")
var ErrClosed = errors.New("task runner is closed")

// Submitter is what the HTTP layer needs from an execution backend. Both the
// in-process Runner and the Redis-backed queue implement it.
type Submitter interface {
	Submit(payload CompilationPayload) error
}

type runFunc func(ctx context.Context, payload CompilationPayload) error

type Runner struct {
	run   runFunc
	queue chan CompilationPayload

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(svc *service.Service, workers, queueSize int) *Runner {
	return newRunner(func(ctx context.Context, payload CompilationPayload) error {
		return svc.RunCompilation(ctx, payload.TaskID, payload.Req)
	}, workers, queueSize)
}

func newRunner(run runFunc, workers, queueSize int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}

	r := &Runner{
		run:   run,
		queue: make(chan CompilationPayload, queueSize),
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.work()
	}
	return r
}

func (r *Runner) work() {
	defer r.wg.Done()
	for payload := range r.queue {
		// RunCompilation records failures on the task itself; the error
		// here is only worth a log line.
		if err := r.run(context.Background(), payload); err != nil {
			log.GetLogger().Warn("compilation task failed",
				zap.String("taskId", payload.TaskID),
				zap.Error(err))
		}
	}
}

// Submit enqueues a task without blocking. Callers get an immediate error
// when the queue is saturated instead of a hung request.
func (r *Runner) Submit(payload CompilationPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	select {
	case r.queue <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending reports the number of queued, not yet started tasks.
func (r *Runner) Pending() int {
	return len(r.queue)
}

// Close stops accepting tasks and waits for in-flight ones to finish.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}
