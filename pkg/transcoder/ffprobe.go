package transcoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// FFprobe is the Prober implementation backed by the ffprobe binary.
type FFprobe struct {
	BinPath string
}

func NewFFprobe(binPath string) *FFprobe {
	if strings.TrimSpace(binPath) == "" {
		binPath = "ffprobe"
	}
	return &FFprobe{BinPath: binPath}
}

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration returns the container duration in seconds.
func (f *FFprobe) Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, f.BinPath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w: %s", path, err, diagnosticTail(stderr.Bytes()))
	}

	var parsed probeFormat
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		return 0, fmt.Errorf("ffprobe output parse failed for %s: %w", path, err)
	}
	if parsed.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", path)
	}

	duration, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q parse failed for %s: %w", parsed.Format.Duration, path, err)
	}
	return duration, nil
}
