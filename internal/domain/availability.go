package domain

import "time"

// AvailableDates returns the subset of dates on which an attraction with the
// given rehab window can be visited, preserving input order.
//
// Without an active rehab every date is available. An active rehab with a
// missing bound makes every date unavailable. Otherwise a date is available
// only when its calendar day falls strictly before Start or strictly after
// End; both boundary days count as closed.
func AvailableDates(rehab RehabWindow, dates []time.Time) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if rehab.OpenOn(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsAvailable reports whether at least one of dates is outside the rehab
// window. It is false for an empty dates slice.
func IsAvailable(rehab RehabWindow, dates []time.Time) bool {
	for _, d := range dates {
		if rehab.OpenOn(d) {
			return true
		}
	}
	return false
}

// OpenOn reports whether the attraction is open on the calendar day of t.
func (w RehabWindow) OpenOn(t time.Time) bool {
	if !w.Active {
		return true
	}
	if w.Start == nil || w.End == nil {
		return false
	}
	day := NewDay(t)
	return day < NewDay(*w.Start) || day > NewDay(*w.End)
}
