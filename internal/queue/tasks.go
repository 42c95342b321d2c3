package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"supercut/internal/service"
	"supercut/internal/taskrunner"
)

const TypeCompilation = "compilation:process"

func newCompilationTask(payload taskrunner.CompilationPayload) (*asynq.Task, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode compilation payload: %w", err)
	}
	return asynq.NewTask(TypeCompilation, encoded), nil
}

func newCompilationHandler(svc *service.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload taskrunner.CompilationPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			// Malformed payloads can never succeed, do not retry.
			return fmt.Errorf("decode compilation payload: %w: %w", err, asynq.SkipRetry)
		}
		return svc.RunCompilation(ctx, payload.TaskID, payload.Req)
	}
}
