package taskrunner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerProcessesSubmittedTasks(t *testing.T) {
	var mu sync.Mutex
	var seen []string

	r := newRunner(func(_ context.Context, p CompilationPayload) error {
		mu.Lock()
		seen = append(seen, p.TaskID)
		mu.Unlock()
		return nil
	}, 2, 8)

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, r.Submit(CompilationPayload{TaskID: id}))
	}
	r.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, seen)
}

func TestRunnerRejectsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	r := newRunner(func(context.Context, CompilationPayload) error {
		<-block
		return nil
	}, 1, 1)
	t.Cleanup(func() {
		close(block)
		r.Close()
	})

	// First task occupies the worker, second fills the queue slot.
	require.NoError(t, r.Submit(CompilationPayload{TaskID: "running"}))
	require.Eventually(t, func() bool {
		return r.Submit(CompilationPayload{TaskID: "queued"}) == nil
	}, time.Second, 5*time.Millisecond)

	err := r.Submit(CompilationPayload{TaskID: "overflow"})
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 1, r.Pending())
}

func TestRunnerRejectsAfterClose(t *testing.T) {
	r := newRunner(func(context.Context, CompilationPayload) error { return nil }, 1, 1)
	r.Close()

	err := r.Submit(CompilationPayload{TaskID: "late"})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRunnerCloseIsIdempotent(t *testing.T) {
	r := newRunner(func(context.Context, CompilationPayload) error { return nil }, 1, 1)
	r.Close()
	r.Close()
}

func TestRunnerContinuesAfterTaskError(t *testing.T) {
	var mu sync.Mutex
	count := 0

	r := newRunner(func(context.Context, CompilationPayload) error {
		mu.Lock()
		count++
		mu.Unlock()
		return assert.AnError
	}, 1, 8)

	require.NoError(t, r.Submit(CompilationPayload{TaskID: "t1"}))
	require.NoError(t, r.Submit(CompilationPayload{TaskID: "t2"}))
	r.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, count)
}
