package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supercut/internal/dto"
	"supercut/pkg/errors"
	"supercut/pkg/transcoder"
)

func TestExtractSubClip(t *testing.T) {
	f := newCompileFixture(t)
	f.prober.On("Duration", mock.Anything, mock.Anything).Return(3600.0, nil)

	var captured transcoder.Request
	f.engine.On("Run", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(transcoder.Request)
		}).
		Return(nil)

	res, err := f.svc.ExtractSubClip(context.Background(), dto.SubClipReq{
		Screenshot: "a__0010.jpg",
		StartFrame: 300,
		EndFrame:   450,
	})
	require.NoError(t, err)

	// Sub-frame indices are 30fps positions: 300 -> 10s, 450 -> 15s.
	assert.Equal(t, "a", res.SourceVideoId)
	assert.Equal(t, 10.0, res.StartSeconds)
	assert.Equal(t, 15.0, res.EndSeconds)
	assert.Equal(t, "a_sub_300-450.mp4", filepath.Base(res.OutputPath))

	require.Len(t, captured.Inputs, 1)
	assert.Equal(t, 10.0, captured.Inputs[0].Start)
	assert.Equal(t, 5.0, captured.Inputs[0].Duration)
}

func TestExtractSubClipClampsToDuration(t *testing.T) {
	f := newCompileFixture(t)
	f.prober.On("Duration", mock.Anything, mock.Anything).Return(12.0, nil)
	f.engine.On("Run", mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.ExtractSubClip(context.Background(), dto.SubClipReq{
		Screenshot: "a__0001.jpg",
		StartFrame: 300,
		EndFrame:   900,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, res.EndSeconds)
}

func TestExtractSubClipRejectsBadRanges(t *testing.T) {
	f := newCompileFixture(t)

	cases := []dto.SubClipReq{
		{Screenshot: "a__0001.jpg", StartFrame: -1, EndFrame: 10},
		{Screenshot: "a__0001.jpg", StartFrame: 10, EndFrame: 10},
		{Screenshot: "a__0001.jpg", StartFrame: 20, EndFrame: 10},
	}
	for _, req := range cases {
		_, err := f.svc.ExtractSubClip(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeInvalidParams), "req %+v", req)
	}
}

func TestExtractSubClipRejectsBadScreenshotName(t *testing.T) {
	f := newCompileFixture(t)
	_, err := f.svc.ExtractSubClip(context.Background(), dto.SubClipReq{
		Screenshot: "nonsense",
		EndFrame:   10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeScreenshotNameBad))
}

func TestExtractSubClipMissingSource(t *testing.T) {
	f := newCompileFixture(t)
	_, err := f.svc.ExtractSubClip(context.Background(), dto.SubClipReq{
		Screenshot: "absent__0001.jpg",
		EndFrame:   10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeSourceNotFound))
}

func TestExtractSubClipRangeBeyondSource(t *testing.T) {
	f := newCompileFixture(t)
	f.prober.On("Duration", mock.Anything, mock.Anything).Return(5.0, nil)

	_, err := f.svc.ExtractSubClip(context.Background(), dto.SubClipReq{
		Screenshot: "a__0001.jpg",
		StartFrame: 300,
		EndFrame:   360,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidParams))
}
