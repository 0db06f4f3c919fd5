package domain

// ParkStyle is the visiting style chosen during onboarding.
type ParkStyle string

const (
	StyleRelaxed   ParkStyle = "relaxed"
	StyleBalanced  ParkStyle = "balanced"
	StyleIntensive ParkStyle = "intensive"
)

// Valid reports whether s is empty or one of the known styles.
func (s ParkStyle) Valid() bool {
	switch s {
	case "", StyleRelaxed, StyleBalanced, StyleIntensive:
		return true
	}
	return false
}

// UserPreferences is the onboarding answers, persisted as one opaque value.
// VisitDate is nil until the user picks a date.
type UserPreferences struct {
	VisitedBefore bool      `json:"visitedDisney"`
	ParkStyle     ParkStyle `json:"parkStyle,omitempty"`
	VisitDate     *Day      `json:"visitDate,omitempty"`
}
