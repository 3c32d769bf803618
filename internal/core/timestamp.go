package core

// TabTimes carries the recency sources a tab manager may know about, all in
// Unix milliseconds. Nil means the source is unavailable.
type TabTimes struct {
	LastExecuted    *int64
	SessionLastUsed *int64
	FirstCreated    *int64
}

// ResolveLastUsed picks the best recency value: last execution, then the
// restored session's last use, then creation time. It returns
// UnknownTimestamp when none is set.
func ResolveLastUsed(t TabTimes) int64 {
	for _, v := range []*int64{t.LastExecuted, t.SessionLastUsed, t.FirstCreated} {
		if v != nil {
			return *v
		}
	}
	return UnknownTimestamp
}
