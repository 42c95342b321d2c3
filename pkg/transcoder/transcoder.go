// Package transcoder wraps the external transcoding engine (ffmpeg/ffprobe).
// Invocations are described by a structured Request that is validated before
// being rendered into an argument vector, so callers never concatenate
// command strings by hand.
package transcoder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Input is one source stream for a Request. Start and Duration are optional
// trim parameters; zero Duration means "to the end".
type Input struct {
	Path     string
	Start    float64
	Duration float64
}

// Request describes a single engine invocation.
type Request struct {
	Inputs        []Input
	FilterComplex string
	// Maps selects output streams, e.g. "[outv]". Empty means engine default.
	Maps []string
	// OutputArgs are codec/bitrate flags appended before the output path.
	OutputArgs []string
	OutputPath string
}

// Validate checks the request before it is rendered into argv form.
func (r Request) Validate() error {
	if len(r.Inputs) == 0 {
		return errors.New("transcode request has no inputs")
	}
	for i, in := range r.Inputs {
		if strings.TrimSpace(in.Path) == "" {
			return fmt.Errorf("transcode request input %d has empty path", i)
		}
		if in.Start < 0 {
			return fmt.Errorf("transcode request input %d has negative start %f", i, in.Start)
		}
		if in.Duration < 0 {
			return fmt.Errorf("transcode request input %d has negative duration %f", i, in.Duration)
		}
	}
	if strings.TrimSpace(r.OutputPath) == "" {
		return errors.New("transcode request has empty output path")
	}
	for _, m := range r.Maps {
		if strings.TrimSpace(m) == "" {
			return errors.New("transcode request has empty map entry")
		}
	}
	return nil
}

// Args renders the request into ffmpeg arguments. The caller is expected to
// have run Validate first; Args itself never panics on bad input.
func (r Request) Args() []string {
	args := []string{"-y"}
	for _, in := range r.Inputs {
		if in.Start > 0 {
			args = append(args, "-ss", formatSeconds(in.Start))
		}
		if in.Duration > 0 {
			args = append(args, "-t", formatSeconds(in.Duration))
		}
		args = append(args, "-i", in.Path)
	}
	if r.FilterComplex != "" {
		args = append(args, "-filter_complex", r.FilterComplex)
	}
	for _, m := range r.Maps {
		args = append(args, "-map", m)
	}
	args = append(args, r.OutputArgs...)
	args = append(args, r.OutputPath)
	return args
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Engine runs transcode requests. Implemented by FFmpeg and mocked in tests.
type Engine interface {
	Run(ctx context.Context, req Request) error
}

// Prober reports the container duration of a media file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}
