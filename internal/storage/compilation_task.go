package storage

import (
	"errors"

	"gorm.io/gorm"

	"supercut/internal/types"
)

func SaveTask(task *types.CompilationTask) error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	// Upsert by TaskId: the autoincrement Id is preserved on update.
	var existing types.CompilationTask
	result := DB.Where("task_id = ?", task.TaskId).First(&existing)

	if result.Error == nil {
		task.Id = existing.Id
		return DB.Save(task).Error
	} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return DB.Create(task).Error
	}
	return result.Error
}

func GetTask(taskId string) (*types.CompilationTask, error) {
	if DB == nil {
		return nil, errors.New("database not initialized")
	}
	var task types.CompilationTask
	if err := DB.Where("task_id = ?", taskId).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetTaskHistory(limit int) ([]types.CompilationTask, error) {
	if DB == nil {
		return nil, errors.New("database not initialized")
	}
	var tasks []types.CompilationTask
	if err := DB.Order("create_time desc").Limit(limit).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func DeleteTask(taskId string) error {
	if DB == nil {
		return errors.New("database not initialized")
	}
	return DB.Where("task_id = ?", taskId).Delete(&types.CompilationTask{}).Error
}

// MarkStaleTasks flips tasks left "running" by a crashed process to "failed".
// Called once on startup.
func MarkStaleTasks() (int64, error) {
	if DB == nil {
		return 0, errors.New("database not initialized")
	}
	result := DB.Model(&types.CompilationTask{}).
		Where("status = ?", types.CompilationStatusRunning).
		Updates(map[string]interface{}{
			"status":      types.CompilationStatusFailed,
			"fail_reason": "task interrupted by server restart",
		})
	return result.RowsAffected, result.Error
}
