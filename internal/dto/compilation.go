package dto

// CreateCompilationReq asks for a batch compilation of selected screenshots.
type CreateCompilationReq struct {
	Screenshots []string `json:"screenshots" binding:"required"`
	GroupLabel  string   `json:"group_label" binding:"required"`
	CallbackURL string   `json:"callback_url"`
}

type CreateCompilationResData struct {
	TaskId string `json:"task_id"`
}

// GetCompilationReq fetches the state of one compilation task.
type GetCompilationReq struct {
	TaskId string `form:"taskId" binding:"required"`
}
