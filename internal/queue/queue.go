// Package queue is the Redis-backed execution backend for compilation tasks,
// used instead of the in-process runner when queue.enabled is set. It lets
// multiple server instances share one task stream.
package queue

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"supercut/config"
	"supercut/internal/service"
	"supercut/internal/taskrunner"
	"supercut/log"
)

type Queue struct {
	client *asynq.Client
}

func NewQueue() *Queue {
	return &Queue{client: asynq.NewClient(redisOptions())}
}

func redisOptions() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.Conf.Queue.RedisAddr,
		Password: config.Conf.Queue.RedisPassword,
		DB:       config.Conf.Queue.RedisDB,
	}
}

// Submit implements taskrunner.Submitter on top of asynq.
func (q *Queue) Submit(payload taskrunner.CompilationPayload) error {
	task, err := newCompilationTask(payload)
	if err != nil {
		return err
	}

	info, err := q.client.Enqueue(task, asynq.MaxRetry(2))
	if err != nil {
		return err
	}
	log.GetLogger().Info("compilation enqueued",
		zap.String("taskId", payload.TaskID),
		zap.String("queue", info.Queue))
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// StartWorker runs the asynq consumer in the background and returns the
// server handle for shutdown.
func StartWorker(svc *service.Service) *asynq.Server {
	concurrency := config.Conf.Queue.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	srv := asynq.NewServer(redisOptions(), asynq.Config{Concurrency: concurrency})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompilation, newCompilationHandler(svc))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.GetLogger().Fatal("queue worker stopped", zap.Error(err))
		}
	}()
	return srv
}
