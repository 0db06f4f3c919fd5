package domain

import (
	"cmp"
	"slices"
	"strings"
)

// ShortWaitThreshold is the exclusive upper bound, in minutes, applied by
// RideFilter.ShowShortWaitTimesOnly.
const ShortWaitThreshold = 40

// SelectAll is the selector value meaning "do not filter on this field".
// An empty selector means the same.
const SelectAll = "all"

// RideFilter is the set of toggles applied to the attraction list.
type RideFilter struct {
	// Search is matched case-insensitively against the ride name.
	Search string

	HideClosedRides        bool
	ShowShortWaitTimesOnly bool

	SelectedPark string
	SelectedType string
	SelectedLand string
}

// Match reports whether r passes every active predicate of f.
func (f RideFilter) Match(r RideRecord) bool {
	if f.HideClosedRides && r.Status == StatusClosed {
		return false
	}
	// Rides without a posted wait time never count as short.
	if f.ShowShortWaitTimesOnly && (r.WaitTime == nil || *r.WaitTime >= ShortWaitThreshold) {
		return false
	}
	if !selected(f.SelectedPark, r.Park) || !selected(f.SelectedType, r.Type) || !selected(f.SelectedLand, r.Land) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func selected(selector, value string) bool {
	return selector == "" || selector == SelectAll || selector == value
}

// FilterAndSort returns a new slice with the rides matching f, ordered by
// ascending wait time. Rides with no posted wait time go last; ties keep
// their input order. rides is not modified.
func FilterAndSort(rides []RideRecord, f RideFilter) []RideRecord {
	out := make([]RideRecord, 0, len(rides))
	for _, r := range rides {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, compareWaitTime)
	return out
}

func compareWaitTime(a, b RideRecord) int {
	switch {
	case a.WaitTime == nil && b.WaitTime == nil:
		return 0
	case a.WaitTime == nil:
		return 1
	case b.WaitTime == nil:
		return -1
	}
	return cmp.Compare(*a.WaitTime, *b.WaitTime)
}
