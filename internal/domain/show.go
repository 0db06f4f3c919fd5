package domain

import (
	"slices"
	"time"
)

// ShowRecord is a scheduled show. Showtimes holds the full schedule as
// published by the park API, in whatever order it arrived.
type ShowRecord struct {
	ID        string
	Name      string
	Land      string
	Showtimes []time.Time
	Location  *Coordinates
}

// UpcomingShowtimes returns the showtimes strictly after now, ascending.
// The record itself is left untouched.
func (s ShowRecord) UpcomingShowtimes(now time.Time) []time.Time {
	out := make([]time.Time, 0, len(s.Showtimes))
	for _, t := range s.Showtimes {
		if t.After(now) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// RestaurantRecord is a dining location.
type RestaurantRecord struct {
	ID          string
	Name        string
	Land        string
	Park        string
	Cuisine     string
	Description string
	PriceRange  string
	Location    *Coordinates
}
