package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercut/internal/types"
)

func clipFile(videoID string, start, end float64, ordinal int) types.ClipFile {
	return types.ClipFile{
		Clip: types.Clip{
			SourceVideoID: videoID,
			StartSeconds:  start,
			EndSeconds:    end,
		},
		Path:    "unused",
		Ordinal: ordinal,
	}
}

func TestBuildTimelineContiguous(t *testing.T) {
	files := []types.ClipFile{
		clipFile("a.mkv", 0, 15, 0),
		clipFile("a.mkv", 45, 55, 1),
		clipFile("b.mkv", 120, 130, 2),
	}

	entries := BuildTimeline(files)
	require.Len(t, entries, 3)

	assert.Equal(t, 0.0, entries[0].OutputStartSeconds)
	for i, e := range entries {
		assert.Equal(t, e.OutputEndSeconds-e.OutputStartSeconds,
			files[i].Clip.Duration(), "entry %d duration", i)
		if i > 0 {
			assert.Equal(t, entries[i-1].OutputEndSeconds, e.OutputStartSeconds,
				"entry %d must start where %d ended", i, i-1)
		}
	}
	assert.Equal(t, 35.0, entries[2].OutputEndSeconds)
	assert.Equal(t, "b.mkv", entries[2].SourceVideoID)
	assert.Equal(t, 120.0, entries[2].SourceStartSeconds)
}

func TestRenderTimelineText(t *testing.T) {
	entries := BuildTimeline([]types.ClipFile{
		clipFile("movie.mkv", 750, 760, 0),
		clipFile("movie.mkv", 3600, 3610, 1),
	})

	got := RenderTimelineText(entries)
	want := "00:00-00:10 movie.mkv (12:30-12:40)\n" +
		"00:10-00:20 movie.mkv (60:00-60:10)\n"
	assert.Equal(t, want, got)
}

func TestTimelineTextRoundTrip(t *testing.T) {
	entries := BuildTimeline([]types.ClipFile{
		clipFile("Deep Red (1975).mkv", 0, 15, 0),
		clipFile("b.mkv", 45, 55, 1),
	})

	parsed, err := ParseTimelineText(RenderTimelineText(entries))
	require.NoError(t, err)
	assert.Equal(t, entries, parsed)
}

func TestParseTimelineTextRejectsMalformedLines(t *testing.T) {
	for _, text := range []string{
		"00:00-00:10",                      // no video id
		"00:00-00:10 movie.mkv",            // no source range
		"00:00 movie.mkv (00:00-00:10)",    // output is not a range
		"00:00-00:99 movie.mkv (00:00-00:10)", // seconds out of range
	} {
		_, err := ParseTimelineText(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestParseTimelineTextSkipsBlankLines(t *testing.T) {
	parsed, err := ParseTimelineText("\n00:00-00:10 m.mkv (01:00-01:10)\n\n")
	require.NoError(t, err)
	assert.Len(t, parsed, 1)
}

func TestBuildTimelineEmpty(t *testing.T) {
	assert.Empty(t, BuildTimeline(nil))
	assert.Equal(t, "", RenderTimelineText(nil))
}
