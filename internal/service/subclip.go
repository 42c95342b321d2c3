package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"supercut/config"
	"supercut/internal/appdirs"
	"supercut/internal/dto"
	"supercut/internal/screenshot"
	"supercut/pkg/errors"
	"supercut/pkg/transcoder"
	"supercut/pkg/util"
)

// ExtractSubClip cuts a frame-precise range around a single screenshot. The
// request's frame indices are absolute 30fps sub-frame positions in the
// source video, unrelated to the capture frame index in the screenshot name.
func (s *Service) ExtractSubClip(ctx context.Context, req dto.SubClipReq) (dto.SubClipResData, error) {
	ref, err := screenshot.ParseRef(req.Screenshot)
	if err != nil {
		return dto.SubClipResData{}, errors.Wrap(errors.CodeScreenshotNameBad, "invalid screenshot name", err)
	}

	if req.StartFrame < 0 {
		return dto.SubClipResData{}, errors.New(errors.CodeInvalidParams, "start_frame must not be negative")
	}
	if req.EndFrame <= req.StartFrame {
		return dto.SubClipResData{}, errors.New(errors.CodeInvalidParams, "end_frame must be after start_frame")
	}

	start := screenshot.SubFrame(req.StartFrame).Seconds()
	end := screenshot.SubFrame(req.EndFrame).Seconds()

	sourcePath, ok := ResolveSourcePath(config.Conf.Library.VideosDir, ref.SourceVideoID)
	if !ok {
		return dto.SubClipResData{}, errors.WrapWithDetail(errors.CodeSourceNotFound,
			"Source video not found", ref.SourceVideoID, nil)
	}

	duration, err := s.Prober.Duration(ctx, sourcePath)
	if err != nil {
		return dto.SubClipResData{}, errors.Wrap(errors.CodeProbeFailed, "Source probe failed", err)
	}
	if end > duration {
		end = duration
	}
	if start >= end {
		return dto.SubClipResData{}, errors.New(errors.CodeInvalidParams, "requested range lies beyond the end of the source")
	}

	dirs, err := appDirsResolver()
	if err != nil {
		return dto.SubClipResData{}, errors.Wrap(errors.CodeUnknown, "failed to resolve application directories", err)
	}
	outputRoot := config.Conf.App.OutputDir
	if outputRoot == "" {
		outputRoot = appdirs.OutputRootFor(dirs)
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return dto.SubClipResData{}, errors.Wrap(errors.CodeFileWriteError, "failed to create output directory", err)
	}

	outputPath := filepath.Join(outputRoot, fmt.Sprintf("%s_sub_%d-%d.mp4",
		util.SanitizeLabel(ref.SourceVideoID), req.StartFrame, req.EndFrame))

	runReq := transcoder.Request{
		Inputs: []transcoder.Input{{
			Path:     sourcePath,
			Start:    start,
			Duration: end - start,
		}},
		OutputArgs: clipOutputArgs,
		OutputPath: outputPath,
	}
	if err := s.Engine.Run(ctx, runReq); err != nil {
		return dto.SubClipResData{}, errors.Wrap(errors.CodeSubClipFailed, "sub-clip extraction failed", err)
	}

	return dto.SubClipResData{
		SourceVideoId: ref.SourceVideoID,
		StartSeconds:  start,
		EndSeconds:    end,
		OutputPath:    outputPath,
	}, nil
}
