package tabsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/tabshelf/internal/core"
)

func TestParseResolvesTimestamps(t *testing.T) {
	snap, err := Parse([]byte(`
selected: b
tabs:
  - id: a
    lastExecutedTime: 300
    sessionLastUsedTime: 200
  - id: b
    sessionLastUsedTime: 200
    firstCreatedTime: 100
  - id: c
    firstCreatedTime: 100
  - id: d
`))
	require.NoError(t, err)
	require.Equal(t, "b", snap.Selected)
	require.Equal(t, []core.TabSnapshot{
		{ID: "a", LastUsed: 300},
		{ID: "b", LastUsed: 200},
		{ID: "c", LastUsed: 100},
		{ID: "d", LastUsed: core.UnknownTimestamp},
	}, snap.Tabs)
}

func TestParseAcceptsJSON(t *testing.T) {
	snap, err := Parse([]byte(`{"tabs":[{"id":"a","lastExecutedTime":42}]}`))
	require.NoError(t, err)
	require.Equal(t, []core.TabSnapshot{{ID: "a", LastUsed: 42}}, snap.Tabs)
}

func TestParseRejectsBadTabs(t *testing.T) {
	_, err := Parse([]byte("tabs:\n  - lastExecutedTime: 1\n"))
	require.Error(t, err)

	_, err = Parse([]byte("tabs:\n  - id: a\n  - id: a\n"))
	require.Error(t, err)

	_, err = Parse([]byte("tabs: [oops"))
	require.Error(t, err)
}

func TestFileSourceWatchSignalsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  - id: a\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := NewFileSource(path, 10*time.Millisecond)
	events, err := src.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  - id: a\n  - id: b\n"), 0o644))

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change signal")
	}

	snap, err := src.Read()
	require.NoError(t, err)
	require.Len(t, snap.Tabs, 2)

	cancel()
	for range events {
	}
}

func TestFileSourceWatchMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"), 0)
	_, err := src.Watch(context.Background())
	require.Error(t, err)
}
