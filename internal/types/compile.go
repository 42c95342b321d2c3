package types

import (
	"supercut/internal/screenshot"
)

// Clip is a padded, contiguous time range in one source video covering a run
// of consecutively captured screenshots.
type Clip struct {
	SourceVideoID string
	StartSeconds  float64
	EndSeconds    float64
	FirstFrame    screenshot.CaptureFrame
	LastFrame     screenshot.CaptureFrame
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	return c.EndSeconds - c.StartSeconds
}

// ClipFile is an extracted clip on disk. Ordinal is the position in the final
// concatenation order.
type ClipFile struct {
	Clip    Clip
	Path    string
	Ordinal int
}

// TimelineEntry maps a range of the deliverable back to its source.
type TimelineEntry struct {
	OutputStartSeconds float64 `json:"output_start_seconds"`
	OutputEndSeconds   float64 `json:"output_end_seconds"`
	SourceVideoID      string  `json:"source_video_id"`
	SourceStartSeconds float64 `json:"source_start_seconds"`
	SourceEndSeconds   float64 `json:"source_end_seconds"`
}

// Compilation task statuses
const (
	CompilationStatusQueued  uint8 = 0
	CompilationStatusRunning uint8 = 1
	CompilationStatusDone    uint8 = 2
	CompilationStatusFailed  uint8 = 3
)

// CompilationTask is the persisted record of one compilation request.
type CompilationTask struct {
	Id               int64  `json:"-" gorm:"primaryKey;autoIncrement"`
	TaskId           string `json:"task_id" gorm:"index;size:64"`
	GroupLabel       string `json:"group_label"`
	Status           uint8  `json:"status"`
	ProcessPct       uint8  `json:"process_percent"`
	ScreenshotCount  int    `json:"screenshot_count"`
	ClipCount        int    `json:"clip_count"`
	Warnings         string `json:"warnings" gorm:"type:text"` // JSON array of strings
	OutputPath       string `json:"output_path"`
	TimelineJSONPath string `json:"timeline_json_path"`
	TimelineTextPath string `json:"timeline_text_path"`
	FailReason       string `json:"fail_reason"`
	CallbackURL      string `json:"-"`
	CreateTime       int64  `json:"create_time" gorm:"autoCreateTime"`
	UpdateTime       int64  `json:"update_time" gorm:"autoUpdateTime"`
}

func (CompilationTask) TableName() string {
	return "compilation_tasks"
}
