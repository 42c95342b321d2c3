package handler

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supercut/internal/dto"
	"supercut/internal/response"
	"supercut/internal/storage"
	"supercut/internal/taskrunner"
	"supercut/internal/types"
	"supercut/pkg/errors"
)

const defaultHistoryLimit = 50

func (h *Handler) CreateCompilation(c *gin.Context) {
	var req dto.CreateCompilationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeInvalidParams, "Invalid parameters", err))
		return
	}
	if len(req.Screenshots) == 0 {
		response.ErrorResponse(c, errors.ErrEmptySelection)
		return
	}

	taskID := uuid.NewString()
	task := &types.CompilationTask{
		TaskId:          taskID,
		GroupLabel:      req.GroupLabel,
		Status:          types.CompilationStatusQueued,
		ScreenshotCount: len(req.Screenshots),
		CallbackURL:     req.CallbackURL,
	}
	if err := storage.SaveTask(task); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeDBError, "failed to create task", err))
		return
	}

	if err := h.Runner.Submit(taskrunner.CompilationPayload{TaskID: taskID, Req: req}); err != nil {
		task.Status = types.CompilationStatusFailed
		task.FailReason = err.Error()
		_ = storage.SaveTask(task)
		response.ErrorResponse(c, errors.Wrap(errors.CodeCompilationFailed, "failed to enqueue compilation", err))
		return
	}

	response.Success(c, dto.CreateCompilationResData{TaskId: taskID})
}

func (h *Handler) GetCompilation(c *gin.Context) {
	var req dto.GetCompilationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeInvalidParams, "Invalid parameters", err))
		return
	}

	task, err := storage.GetTask(req.TaskId)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.ErrorResponse(c, errors.ErrNotFound)
			return
		}
		response.ErrorResponse(c, errors.Wrap(errors.CodeDBError, "failed to load task", err))
		return
	}
	response.Success(c, task)
}

func (h *Handler) GetCompilationHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.ErrorResponse(c, errors.New(errors.CodeInvalidParams, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	tasks, err := storage.GetTaskHistory(limit)
	if err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeDBError, "failed to load task history", err))
		return
	}
	response.Success(c, tasks)
}

func (h *Handler) DeleteCompilation(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		response.ErrorResponse(c, errors.New(errors.CodeInvalidParams, "taskId is required"))
		return
	}

	task, err := storage.GetTask(taskID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.ErrorResponse(c, errors.ErrNotFound)
			return
		}
		response.ErrorResponse(c, errors.Wrap(errors.CodeDBError, "failed to load task", err))
		return
	}
	if task.Status == types.CompilationStatusRunning {
		response.ErrorResponse(c, errors.New(errors.CodeInvalidParams, "cannot delete a running task"))
		return
	}

	if err := storage.DeleteTask(taskID); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeDBError, "failed to delete task", err))
		return
	}
	response.Success(c, nil)
}
