// Package screenshot parses captured still-frame names and defines the two
// frame-numbering unit systems used by the compiler.
//
// Capture frames count stills sampled every 5 seconds of source video; they
// are what screenshot names encode and what the batch compiler works in.
// Sub-frames count 1/30 second steps and are used only by the interactive
// sub-clip extractor. The two spaces are kept as distinct types and are never
// converted into each other.
package screenshot

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// CaptureIntervalSec is the fixed sampling interval of the screenshot
	// extraction pass.
	CaptureIntervalSec = 5.0

	// SubFrameRate is the frame rate of the interactive extractor's
	// sub-frame numbering.
	SubFrameRate = 30.0
)

// CaptureFrame is an index in the capture sampling numbering.
type CaptureFrame int

// Seconds returns the source timestamp the frame was captured at.
func (f CaptureFrame) Seconds() float64 {
	return float64(f) * CaptureIntervalSec
}

// SubFrame is an index in the interactive extractor's 30fps numbering.
type SubFrame int

// Seconds returns the source timestamp the sub-frame refers to.
func (f SubFrame) Seconds() float64 {
	return float64(f) / SubFrameRate
}

// Ref identifies one captured still: which source video it came from, its
// capture frame index and the derived source timestamp.
type Ref struct {
	SourceVideoID    string
	Frame            CaptureFrame
	TimestampSeconds float64
}

// Screenshot names follow <sourceVideoId>__<frameIndex>.<ext>. The id may
// itself contain dots or underscores (ids often carry the container
// extension, e.g. "Movie.mkv"), so the frame separator is the last "__".
var namePattern = regexp.MustCompile(`^(.+)__(\d+)\.([A-Za-z0-9]+)$`)

// ParseRef parses a screenshot name into a Ref. Names that do not follow the
// naming convention are rejected; callers drop and report them rather than
// failing the whole batch.
func ParseRef(name string) (Ref, error) {
	matches := namePattern.FindStringSubmatch(name)
	if matches == nil {
		return Ref{}, fmt.Errorf("screenshot name %q does not match <video>__<frame>.<ext>", name)
	}

	frame, err := strconv.Atoi(matches[2])
	if err != nil {
		// \d+ can still overflow int on absurd inputs.
		return Ref{}, fmt.Errorf("screenshot name %q has invalid frame index: %w", name, err)
	}
	if frame < 0 {
		return Ref{}, fmt.Errorf("screenshot name %q has negative frame index", name)
	}

	captureFrame := CaptureFrame(frame)
	return Ref{
		SourceVideoID:    matches[1],
		Frame:            captureFrame,
		TimestampSeconds: captureFrame.Seconds(),
	}, nil
}
