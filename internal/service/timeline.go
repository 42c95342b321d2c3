package service

import (
	"fmt"
	"strings"

	"supercut/internal/types"
	"supercut/pkg/util"
)

// BuildTimeline maps the stitched deliverable back to its sources. Entries
// are contiguous from zero: each clip starts where the previous one ended.
func BuildTimeline(files []types.ClipFile) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0, len(files))
	cursor := 0.0
	for _, file := range files {
		duration := file.Clip.Duration()
		entries = append(entries, types.TimelineEntry{
			OutputStartSeconds: cursor,
			OutputEndSeconds:   cursor + duration,
			SourceVideoID:      file.Clip.SourceVideoID,
			SourceStartSeconds: file.Clip.StartSeconds,
			SourceEndSeconds:   file.Clip.EndSeconds,
		})
		cursor += duration
	}
	return entries
}

// RenderTimelineText renders one line per entry:
//
//	00:45-00:55 movie.mkv (12:30-12:40)
//
// Timestamps floor to whole seconds.
func RenderTimelineText(entries []types.TimelineEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s-%s %s (%s-%s)\n",
			util.FormatMMSS(e.OutputStartSeconds),
			util.FormatMMSS(e.OutputEndSeconds),
			e.SourceVideoID,
			util.FormatMMSS(e.SourceStartSeconds),
			util.FormatMMSS(e.SourceEndSeconds))
	}
	return b.String()
}

// ParseTimelineText parses text produced by RenderTimelineText. Video ids may
// contain spaces and parentheses, so the source range is taken from the last
// parenthesized group on each line.
func ParseTimelineText(text string) ([]types.TimelineEntry, error) {
	var entries []types.TimelineEntry
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		outputRange, rest, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("timeline line %d: missing video id", lineNo+1)
		}
		openIdx := strings.LastIndex(rest, " (")
		if openIdx < 0 || !strings.HasSuffix(rest, ")") {
			return nil, fmt.Errorf("timeline line %d: missing source range", lineNo+1)
		}
		videoID := rest[:openIdx]
		sourceRange := rest[openIdx+2 : len(rest)-1]
		if videoID == "" {
			return nil, fmt.Errorf("timeline line %d: empty video id", lineNo+1)
		}

		outStart, outEnd, err := parseRange(outputRange)
		if err != nil {
			return nil, fmt.Errorf("timeline line %d: %w", lineNo+1, err)
		}
		srcStart, srcEnd, err := parseRange(sourceRange)
		if err != nil {
			return nil, fmt.Errorf("timeline line %d: %w", lineNo+1, err)
		}

		entries = append(entries, types.TimelineEntry{
			OutputStartSeconds: outStart,
			OutputEndSeconds:   outEnd,
			SourceVideoID:      videoID,
			SourceStartSeconds: srcStart,
			SourceEndSeconds:   srcEnd,
		})
	}
	return entries, nil
}

func parseRange(s string) (float64, float64, error) {
	startStr, endStr, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, fmt.Errorf("invalid time range %q", s)
	}
	start, err := util.ParseMMSS(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := util.ParseMMSS(endStr)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
