package core

import (
	"time"
)

// Window is the verdict of the recency bucketer.
type Window int

const (
	WithinActiveWindow Window = iota
	AgingWindow
	StaleWindow
)

func (w Window) String() string {
	switch w {
	case WithinActiveWindow:
		return "active"
	case AgingWindow:
		return "aging"
	case StaleWindow:
		return "stale"
	}
	return "unknown"
}

// Windows sets the aging thresholds in calendar days.
type Windows struct {
	ActiveDays int
	StaleDays  int
}

// DefaultWindows demotes to inactive after 4 days and to recently closed
// after 30.
var DefaultWindows = Windows{ActiveDays: 4, StaleDays: 30}

func (w Windows) orDefault() Windows {
	if w.ActiveDays <= 0 || w.StaleDays <= w.ActiveDays {
		return DefaultWindows
	}
	return w
}

// Reference holds the thresholds for one evaluation.
type Reference struct {
	Noon        time.Time
	ActiveSince time.Time // strictly after -> active
	StaleBefore time.Time // strictly before -> stale
}

// NewReference anchors the windows at calendar noon of now, in now's
// location. Invalid windows fall back to DefaultWindows.
func NewReference(now time.Time, w Windows) Reference {
	w = w.orDefault()
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	return Reference{
		Noon:        noon,
		ActiveSince: noon.AddDate(0, 0, -w.ActiveDays),
		StaleBefore: noon.AddDate(0, 0, -w.StaleDays),
	}
}

func (r Reference) Bucket(tabDate time.Time) Window {
	switch {
	case tabDate.After(r.ActiveSince):
		return WithinActiveWindow
	case tabDate.Before(r.StaleBefore):
		return StaleWindow
	default:
		return AgingWindow
	}
}

// Bucket classifies tabDate against now using DefaultWindows.
func Bucket(tabDate, now time.Time) Window {
	return NewReference(now, DefaultWindows).Bucket(tabDate)
}
