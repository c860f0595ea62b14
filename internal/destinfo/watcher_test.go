package destinfo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazish-kiran/travel-planner/internal/destinfo"
)

// ---- Watcher tests ---------------------------------------------------------

func TestWatcher_CommitRuns(t *testing.T) {
	w := destinfo.NewWatcher()

	_, commit := w.Begin(context.Background())

	ran := false
	assert.True(t, commit(func() { ran = true }))
	assert.True(t, ran)
}

func TestWatcher_BeginCancelsPrevious(t *testing.T) {
	w := destinfo.NewWatcher()

	ctx1, _ := w.Begin(context.Background())
	require.NoError(t, ctx1.Err())

	w.Begin(context.Background())

	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
}

func TestWatcher_SupersededCommitIsDiscarded(t *testing.T) {
	w := destinfo.NewWatcher()

	_, commit1 := w.Begin(context.Background())
	_, commit2 := w.Begin(context.Background())

	ran1 := false
	assert.False(t, commit1(func() { ran1 = true }))
	assert.False(t, ran1)

	ran2 := false
	assert.True(t, commit2(func() { ran2 = true }))
	assert.True(t, ran2)
}

func TestWatcher_CommitIsOrderIndependent(t *testing.T) {
	// A stale lookup can race past a fresh one; only the fresh commit wins
	// regardless of which returns first.
	w := destinfo.NewWatcher()

	_, stale := w.Begin(context.Background())
	_, fresh := w.Begin(context.Background())

	assert.True(t, fresh(func() {}))
	assert.False(t, stale(func() {}))
}

func TestWatcher_Stop(t *testing.T) {
	w := destinfo.NewWatcher()

	ctx, commit := w.Begin(context.Background())
	w.Stop()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, commit(func() {}))
}

func TestWatcher_BeginAfterStop(t *testing.T) {
	w := destinfo.NewWatcher()
	w.Stop()

	ctx, commit := w.Begin(context.Background())

	require.NoError(t, ctx.Err())
	assert.True(t, commit(func() {}))
}
