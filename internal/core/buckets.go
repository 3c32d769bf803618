package core

// CurrentBuckets sorts tabs by their stored state without re-running the
// engine. Tabs with no record count as normal.
func CurrentBuckets(tabs []TabSnapshot, store Classifications) Result {
	res := Result{
		Normal:         make([]string, 0, len(tabs)),
		Inactive:       []string{},
		RecentlyClosed: []string{},
	}
	for _, tab := range tabs {
		rec, ok := store[tab.ID]
		if !ok {
			res.Normal = append(res.Normal, tab.ID)
			continue
		}
		switch rec.State {
		case StateInactive:
			res.Inactive = append(res.Inactive, tab.ID)
		case StateRecentlyClosed:
			res.RecentlyClosed = append(res.RecentlyClosed, tab.ID)
		default:
			res.Normal = append(res.Normal, tab.ID)
		}
	}
	return res
}
