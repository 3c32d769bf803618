package core

import (
	"time"
)

// State is the visible classification of a tab.
type State string

const (
	StateNormal         State = "normal"
	StateInactive       State = "inactive"
	StateRecentlyClosed State = "recentlyClosed"
)

func (s State) Valid() bool {
	switch s {
	case StateNormal, StateInactive, StateRecentlyClosed:
		return true
	}
	return false
}

// Pending is a demotion recorded by one evaluation and committed by a later
// cold start. The zero value means no transition is pending.
type Pending string

const (
	PendingNone           Pending = ""
	PendingInactive       Pending = "shouldBecomeInactive"
	PendingRecentlyClosed Pending = "shouldBecomeRecentlyClosed"
)

func (p Pending) Valid() bool {
	switch p {
	case PendingNone, PendingInactive, PendingRecentlyClosed:
		return true
	}
	return false
}

// Target returns the state a pending transition leads to.
func (p Pending) Target() State {
	switch p {
	case PendingInactive:
		return StateInactive
	case PendingRecentlyClosed:
		return StateRecentlyClosed
	}
	return StateNormal
}

// Record is the persisted classification of one tab.
type Record struct {
	State   State
	Pending Pending
}

// IsPending reports whether a demotion is waiting for a cold start.
func (r Record) IsPending() bool { return r.Pending != PendingNone }

// Classifications maps tab id to record. It is loaded, mutated and saved as
// one unit.
type Classifications map[string]Record

// Clone returns an independent copy; a nil receiver yields an empty map.
func (c Classifications) Clone() Classifications {
	out := make(Classifications, len(c))
	for id, rec := range c {
		out[id] = rec
	}
	return out
}

// UnknownTimestamp marks a tab whose last use cannot be determined.
const UnknownTimestamp int64 = 0

// TabSnapshot is the caller's view of one open tab.
type TabSnapshot struct {
	ID string

	// LastUsed is Unix milliseconds, or UnknownTimestamp.
	LastUsed int64
}

// LastUsedTime converts LastUsed to a time. Callers check for
// UnknownTimestamp first.
func (t TabSnapshot) LastUsedTime() time.Time { return time.UnixMilli(t.LastUsed) }

// Mode tells the engine whether this is the first evaluation since the
// process started.
type Mode int

const (
	ColdStart Mode = iota
	SameSession
)

func (m Mode) String() string {
	switch m {
	case ColdStart:
		return "cold-start"
	case SameSession:
		return "same-session"
	}
	return "unknown"
}

// Result holds tab ids per bucket in input order.
type Result struct {
	Normal         []string `json:"normal" yaml:"normal"`
	Inactive       []string `json:"inactive" yaml:"inactive"`
	RecentlyClosed []string `json:"recentlyClosed" yaml:"recentlyClosed"`
}
