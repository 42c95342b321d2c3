package service

import (
	"context"
	"fmt"
	"strings"

	"supercut/internal/types"
	"supercut/pkg/errors"
	"supercut/pkg/transcoder"
)

type ConcatOptions struct {
	Width           int
	Height          int
	FPS             int
	AudioSampleRate int
}

// buildConcatRequest renders the normalize-and-stitch invocation. Every clip
// is scaled into the target frame with pillarboxing, resampled to a common
// audio format, then fed through the concat filter in ordinal order.
func buildConcatRequest(files []types.ClipFile, outputPath string, opts ConcatOptions) (transcoder.Request, error) {
	if len(files) == 0 {
		return transcoder.Request{}, errors.New(errors.CodeConcatFailed, "no clips to concatenate")
	}

	var filter strings.Builder
	for i := range files {
		fmt.Fprintf(&filter,
			"[%d:v]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1,fps=%d[v%d];",
			i, opts.Width, opts.Height, opts.Width, opts.Height, opts.FPS, i)
		fmt.Fprintf(&filter,
			"[%d:a]aresample=%d,aformat=sample_fmts=fltp:channel_layouts=stereo[a%d];",
			i, opts.AudioSampleRate, i)
	}
	for i := range files {
		fmt.Fprintf(&filter, "[v%d][a%d]", i, i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=1:a=1[outv][outa]", len(files))

	inputs := make([]transcoder.Input, len(files))
	for i, file := range files {
		inputs[i] = transcoder.Input{Path: file.Path}
	}

	return transcoder.Request{
		Inputs:        inputs,
		FilterComplex: filter.String(),
		Maps:          []string{"[outv]", "[outa]"},
		OutputArgs: []string{
			"-c:v", "libx264",
			"-preset", "fast",
			"-c:a", "aac",
			"-b:a", "192k",
			"-movflags", "+faststart",
		},
		OutputPath: outputPath,
	}, nil
}

// ConcatClips stitches the extracted clips into the deliverable at outputPath.
func (s *Service) ConcatClips(ctx context.Context, files []types.ClipFile, outputPath string, opts ConcatOptions) error {
	req, err := buildConcatRequest(files, outputPath, opts)
	if err != nil {
		return err
	}
	if err := s.Engine.Run(ctx, req); err != nil {
		return errors.Wrap(errors.CodeConcatFailed, "clip concatenation failed", err)
	}
	return nil
}
