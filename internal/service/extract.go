package service

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"supercut/internal/types"
	"supercut/log"
	"supercut/pkg/errors"
	"supercut/pkg/transcoder"
)

type ExtractOptions struct {
	VideosDir   string
	ScratchDir  string
	Concurrency int
}

type ExtractResult struct {
	Files    []types.ClipFile
	Warnings []string
}

// clipOutputArgs re-encodes every clip. Stream copy would be faster but cuts
// on keyframes only, which shifts clip boundaries by several seconds.
var clipOutputArgs = []string{
	"-c:v", "libx264",
	"-preset", "fast",
	"-c:a", "aac",
	"-b:a", "192k",
}

type sourceInfo struct {
	path     string
	duration float64
}

// ExtractClips cuts every clip out of its source video into the scratch
// directory. A clip whose source is missing, unreadable or too short is
// dropped with a warning; the batch fails only when nothing survives.
// Surviving files keep clip order and carry contiguous ordinals.
func (s *Service) ExtractClips(ctx context.Context, clips []types.Clip, opts ExtractOptions) (ExtractResult, error) {
	result := ExtractResult{}
	if len(clips) == 0 {
		return result, errors.ErrNoClipsExtracted
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	// Resolve and probe each source once, not per clip.
	sources := make(map[string]sourceInfo)
	for _, clip := range clips {
		if _, seen := sources[clip.SourceVideoID]; seen {
			continue
		}

		path, ok := ResolveSourcePath(opts.VideosDir, clip.SourceVideoID)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("source video %q not found in library", clip.SourceVideoID))
			sources[clip.SourceVideoID] = sourceInfo{}
			continue
		}

		duration, err := s.Prober.Duration(ctx, path)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("source video %q probe failed: %v", clip.SourceVideoID, err))
			sources[clip.SourceVideoID] = sourceInfo{}
			continue
		}
		sources[clip.SourceVideoID] = sourceInfo{path: path, duration: duration}
	}

	extracted := make([]*types.ClipFile, len(clips))
	clipWarnings := make([]string, len(clips))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, clip := range clips {
		src := sources[clip.SourceVideoID]
		if src.path == "" {
			continue
		}

		start := clip.StartSeconds
		end := clip.EndSeconds
		if end > src.duration {
			end = src.duration
		}
		if start >= end {
			clipWarnings[i] = fmt.Sprintf(
				"clip %s [%.1fs, %.1fs] lies beyond the end of the source (%.1fs)",
				clip.SourceVideoID, clip.StartSeconds, clip.EndSeconds, src.duration)
			continue
		}

		outputPath := filepath.Join(opts.ScratchDir, fmt.Sprintf("clip_%03d.mp4", i))
		req := transcoder.Request{
			Inputs: []transcoder.Input{{
				Path:     src.path,
				Start:    start,
				Duration: end - start,
			}},
			OutputArgs: clipOutputArgs,
			OutputPath: outputPath,
		}

		i, clip, start, end := i, clip, start, end
		group.Go(func() error {
			if err := s.Engine.Run(groupCtx, req); err != nil {
				clipWarnings[i] = fmt.Sprintf(
					"clip %s [%.1fs, %.1fs] extraction failed: %v",
					clip.SourceVideoID, start, end, err)
				log.GetLogger().Warn("clip extraction failed",
					zap.String("video", clip.SourceVideoID),
					zap.Float64("start", start),
					zap.Float64("end", end),
					zap.Error(err))
				return nil
			}
			clipFile := clip
			clipFile.StartSeconds = start
			clipFile.EndSeconds = end
			extracted[i] = &types.ClipFile{Clip: clipFile, Path: outputPath}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return result, errors.Wrap(errors.CodeExtractFailed, "clip extraction aborted", err)
	}

	for _, warning := range clipWarnings {
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}
	for _, file := range extracted {
		if file == nil {
			continue
		}
		file.Ordinal = len(result.Files)
		result.Files = append(result.Files, *file)
	}

	if len(result.Files) == 0 {
		return result, errors.ErrNoClipsExtracted
	}
	return result, nil
}
