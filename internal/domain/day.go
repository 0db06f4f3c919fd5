package domain

import (
	"fmt"
	"time"
)

// DayLayout is the wire and storage format of a Day.
const DayLayout = "2006-01-02"

// Day is a calendar day with the time of day stripped, formatted as
// "2006-01-02". It is comparable and safe to use as a map key.
type Day string

// NewDay normalizes t to its calendar day in t's own location.
func NewDay(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// ParseDay parses a "2006-01-02" string.
// Returns ErrValidation if s is not a valid calendar day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid day %q", ErrValidation, s)
	}
	return NewDay(t), nil
}

// Time returns midnight UTC of the day. An invalid Day yields the zero time.
func (d Day) Time() time.Time {
	t, _ := time.Parse(DayLayout, string(d))
	return t
}

func (d Day) String() string {
	return string(d)
}
