package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentBucketsPreservesInputOrder(t *testing.T) {
	tabs := []TabSnapshot{
		tab("n1", 1), tab("i1", 1), tab("r1", 1), tab("n2", 1), tab("i2", 1), tab("r2", 1),
	}
	store := Classifications{
		"n1": {State: StateNormal, Pending: PendingInactive},
		"i1": {State: StateInactive},
		"r1": {State: StateRecentlyClosed},
		"i2": {State: StateInactive},
		"r2": {State: StateRecentlyClosed, Pending: PendingRecentlyClosed},
	}

	res := CurrentBuckets(tabs, store)

	require.Equal(t, []string{"n1", "n2"}, res.Normal)
	require.Equal(t, []string{"i1", "i2"}, res.Inactive)
	require.Equal(t, []string{"r1", "r2"}, res.RecentlyClosed)
}

func TestCurrentBucketsEmptyStore(t *testing.T) {
	res := CurrentBuckets([]TabSnapshot{tab("a", 0), tab("b", 0)}, nil)

	require.Equal(t, []string{"a", "b"}, res.Normal)
	require.Empty(t, res.Inactive)
	require.Empty(t, res.RecentlyClosed)
}
