package service

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"supercut/internal/screenshot"
	"supercut/internal/types"
)

// SegmentClips merges a screenshot selection into padded clips. Duplicate
// captures collapse, runs of consecutive capture frames within one video merge
// into a single clip, and clips are ordered by source video id then start
// time. The result is independent of input order.
func SegmentClips(refs []screenshot.Ref, paddingSec float64) []types.Clip {
	if paddingSec < 0 {
		paddingSec = 0
	}

	unique := lo.UniqBy(refs, func(r screenshot.Ref) string {
		return fmt.Sprintf("%s\x00%d", r.SourceVideoID, r.Frame)
	})
	byVideo := lo.GroupBy(unique, func(r screenshot.Ref) string {
		return r.SourceVideoID
	})

	videoIDs := lo.Keys(byVideo)
	sort.Strings(videoIDs)

	var clips []types.Clip
	for _, videoID := range videoIDs {
		group := byVideo[videoID]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Frame < group[j].Frame
		})

		runFirst := group[0].Frame
		runLast := group[0].Frame
		for _, ref := range group[1:] {
			if ref.Frame == runLast+1 {
				runLast = ref.Frame
				continue
			}
			clips = append(clips, padClip(videoID, runFirst, runLast, paddingSec))
			runFirst = ref.Frame
			runLast = ref.Frame
		}
		clips = append(clips, padClip(videoID, runFirst, runLast, paddingSec))
	}
	return clips
}

// padClip applies the padding once, when a run is closed. A single captured
// frame therefore yields a clip of 2*padding around its timestamp.
func padClip(videoID string, first, last screenshot.CaptureFrame, paddingSec float64) types.Clip {
	start := first.Seconds() - paddingSec
	if start < 0 {
		start = 0
	}
	return types.Clip{
		SourceVideoID: videoID,
		StartSeconds:  start,
		EndSeconds:    last.Seconds() + paddingSec,
		FirstFrame:    first,
		LastFrame:     last,
	}
}
