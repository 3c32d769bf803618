package core

import (
	"time"
)

// Evaluate reclassifies every tab in tabs and returns store, creating it when
// nil. Records of tabs not in tabs are left alone. selectedID may be empty.
func Evaluate(tabs []TabSnapshot, selectedID string, mode Mode, now time.Time, w Windows, store Classifications) Classifications {
	if store == nil {
		store = make(Classifications, len(tabs))
	}
	ref := NewReference(now, w)

	for _, tab := range tabs {
		rec, ok := store[tab.ID]
		if !ok {
			rec = Record{State: StateNormal}
		}
		selected := selectedID != "" && tab.ID == selectedID
		store[tab.ID] = step(rec, tab, selected, mode, ref)
	}
	return store
}

func step(rec Record, tab TabSnapshot, selected bool, mode Mode, ref Reference) Record {
	if selected || tab.LastUsed == UnknownTimestamp {
		return Record{State: StateNormal}
	}
	// Frozen until the next cold start.
	if rec.IsPending() && mode == SameSession {
		return rec
	}

	switch ref.Bucket(tab.LastUsedTime()) {
	case AgingWindow:
		return demote(rec, mode, PendingInactive)
	case StaleWindow:
		return demote(rec, mode, PendingRecentlyClosed)
	default:
		return Record{State: StateNormal}
	}
}

// demote commits an existing pending transition on cold start, otherwise
// records marker. Any pending marker commits to marker's target, so a tab
// that aged from the aging into the stale window between launches lands in
// recently closed directly.
func demote(rec Record, mode Mode, marker Pending) Record {
	target := marker.Target()
	switch {
	case mode == ColdStart && rec.IsPending():
		return Record{State: target}
	case mode == ColdStart:
		rec.Pending = marker
	case rec.State != target:
		rec.Pending = marker
	}
	return rec
}
