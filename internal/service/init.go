// Package service implements the compilation pipeline: segmenting screenshot
// selections into clips, extracting them from the source library, stitching
// the deliverable and emitting its timeline sidecars.
package service

import (
	"supercut/internal/storage"
	"supercut/pkg/notify"
	"supercut/pkg/transcoder"
)

type Service struct {
	Engine   transcoder.Engine
	Prober   transcoder.Prober
	Notifier *notify.Notifier
}

func NewService() *Service {
	return &Service{
		Engine:   transcoder.NewFFmpeg(storage.FfmpegPath),
		Prober:   transcoder.NewFFprobe(storage.FfprobePath),
		Notifier: notify.NewNotifier(),
	}
}
