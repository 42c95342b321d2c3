package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"supercut/config"
	"supercut/internal/appdirs"
	"supercut/internal/dto"
	"supercut/internal/screenshot"
	"supercut/internal/storage"
	"supercut/internal/types"
	"supercut/log"
	"supercut/pkg/errors"
	"supercut/pkg/util"
)

var appDirsResolver = appdirs.Resolve

// RunCompilation executes one compilation task end to end and keeps the
// persisted task record current. The webhook, when configured, fires exactly
// once with the final task state.
func (s *Service) RunCompilation(ctx context.Context, taskID string, req dto.CreateCompilationReq) error {
	task, err := storage.GetTask(taskID)
	if err != nil {
		task = &types.CompilationTask{
			TaskId:     taskID,
			GroupLabel: req.GroupLabel,
		}
	}
	task.Status = types.CompilationStatusRunning
	task.ProcessPct = 0
	task.FailReason = ""
	task.ScreenshotCount = len(req.Screenshots)
	task.CallbackURL = req.CallbackURL
	if err := storage.SaveTask(task); err != nil {
		return errors.Wrap(errors.CodeDBError, "failed to persist task state", err)
	}

	runErr := s.runCompilation(ctx, task, req)
	if runErr != nil {
		task.Status = types.CompilationStatusFailed
		task.FailReason = runErr.Error()
		log.GetLogger().Error("compilation failed",
			zap.String("taskId", taskID),
			zap.Error(runErr))
	} else {
		task.Status = types.CompilationStatusDone
		task.ProcessPct = 100
		log.GetLogger().Info("compilation finished",
			zap.String("taskId", taskID),
			zap.String("output", task.OutputPath))
	}
	if err := storage.SaveTask(task); err != nil {
		log.GetLogger().Error("failed to persist final task state",
			zap.String("taskId", taskID), zap.Error(err))
	}

	if s.Notifier != nil {
		s.Notifier.CompilationFinished(task.CallbackURL, task)
	}
	return runErr
}

func (s *Service) runCompilation(ctx context.Context, task *types.CompilationTask, req dto.CreateCompilationReq) error {
	if len(req.Screenshots) == 0 {
		return errors.ErrEmptySelection
	}

	var refs []screenshot.Ref
	var warnings []string
	for _, name := range req.Screenshots {
		ref, err := screenshot.ParseRef(name)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return errors.ErrEmptySelection
	}
	s.progress(task, 10, warnings)

	clips := SegmentClips(refs, config.Conf.Compile.PaddingSec)
	task.ClipCount = len(clips)
	s.progress(task, 20, warnings)

	dirs, err := appDirsResolver()
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "failed to resolve application directories", err)
	}

	scratchDir := filepath.Join(appdirs.ScratchRootFor(dirs), task.TaskId)
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to create scratch directory", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.GetLogger().Warn("failed to remove scratch directory",
				zap.String("dir", scratchDir), zap.Error(err))
		}
	}()
	if err := clearStaleClips(scratchDir); err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to clear stale scratch files", err)
	}

	extract, err := s.ExtractClips(ctx, clips, ExtractOptions{
		VideosDir:   config.Conf.Library.VideosDir,
		ScratchDir:  scratchDir,
		Concurrency: config.Conf.Compile.Concurrency,
	})
	warnings = append(warnings, extract.Warnings...)
	if err != nil {
		s.progress(task, task.ProcessPct, warnings)
		return err
	}
	task.ClipCount = len(extract.Files)
	s.progress(task, 70, warnings)

	outputRoot := config.Conf.App.OutputDir
	if outputRoot == "" {
		outputRoot = appdirs.OutputRootFor(dirs)
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to create output directory", err)
	}

	baseName := fmt.Sprintf("%s_%s", util.SanitizeLabel(req.GroupLabel), time.Now().Format("20060102-150405"))
	outputPath := filepath.Join(outputRoot, baseName+".mp4")

	if err := s.ConcatClips(ctx, extract.Files, outputPath, ConcatOptions{
		Width:           config.Conf.Compile.TargetWidth,
		Height:          config.Conf.Compile.TargetHeight,
		FPS:             config.Conf.Compile.TargetFPS,
		AudioSampleRate: config.Conf.Compile.AudioSampleRate,
	}); err != nil {
		// The engine may leave a partial output behind on failure.
		if removeErr := os.Remove(outputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			log.GetLogger().Warn("failed to remove partial output",
				zap.String("path", outputPath), zap.Error(removeErr))
		}
		return err
	}
	s.progress(task, 90, warnings)

	timeline := BuildTimeline(extract.Files)
	jsonPath := filepath.Join(outputRoot, baseName+".json")
	textPath := filepath.Join(outputRoot, baseName+".txt")
	if err := writeTimelineSidecars(timeline, jsonPath, textPath); err != nil {
		return err
	}

	task.OutputPath = outputPath
	task.TimelineJSONPath = jsonPath
	task.TimelineTextPath = textPath
	s.progress(task, 95, warnings)
	return nil
}

// progress persists interim task state. Persistence failures here are logged
// and swallowed so a flaky disk does not kill a running compilation.
func (s *Service) progress(task *types.CompilationTask, pct uint8, warnings []string) {
	task.ProcessPct = pct
	if warnings == nil {
		warnings = []string{}
	}
	if encoded, err := json.Marshal(warnings); err == nil {
		task.Warnings = string(encoded)
	}
	if err := storage.SaveTask(task); err != nil {
		log.GetLogger().Warn("failed to persist task progress",
			zap.String("taskId", task.TaskId), zap.Error(err))
	}
}

// clearStaleClips removes leftover clip files from a previous run of the same
// task id. Only files matching the scratch naming pattern are touched.
func clearStaleClips(scratchDir string) error {
	stale, err := filepath.Glob(filepath.Join(scratchDir, "clip_*.mp4"))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

func writeTimelineSidecars(timeline []types.TimelineEntry, jsonPath, textPath string) error {
	encoded, err := json.MarshalIndent(timeline, "", "  ")
	if err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to encode timeline", err)
	}
	if err := os.WriteFile(jsonPath, append(encoded, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to write timeline json", err)
	}
	if err := os.WriteFile(textPath, []byte(RenderTimelineText(timeline)), 0o644); err != nil {
		return errors.Wrap(errors.CodeFileWriteError, "failed to write timeline text", err)
	}
	return nil
}
