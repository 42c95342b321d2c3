package transcoder

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// EngineError carries the tail of the engine's combined output for diagnostics.
type EngineError struct {
	Output string
	Err    error
}

func (e *EngineError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("transcode engine failed: %v", e.Err)
	}
	return fmt.Sprintf("transcode engine failed: %v: %s", e.Err, e.Output)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// maxDiagnosticBytes limits how much engine output is kept in errors; ffmpeg
// banners alone run to kilobytes.
const maxDiagnosticBytes = 2048

// FFmpeg is the Engine implementation backed by the ffmpeg binary.
type FFmpeg struct {
	BinPath string
}

func NewFFmpeg(binPath string) *FFmpeg {
	if strings.TrimSpace(binPath) == "" {
		binPath = "ffmpeg"
	}
	return &FFmpeg{BinPath: binPath}
}

func (f *FFmpeg) Run(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, f.BinPath, req.Args()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &EngineError{Output: diagnosticTail(output), Err: err}
	}
	return nil
}

func diagnosticTail(output []byte) string {
	s := strings.TrimSpace(string(output))
	if len(s) > maxDiagnosticBytes {
		s = s[len(s)-maxDiagnosticBytes:]
	}
	return s
}
