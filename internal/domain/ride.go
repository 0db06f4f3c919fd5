// Package domain contains the core data types and pure logic for the Magic
// Journey backend: park records, the wait-time filter, rehab availability,
// the day plan and favorites.
// This package depends only on google/uuid and is imported by every other
// internal package (parks, repo, service, handler).
package domain

import "time"

// RecordKind discriminates the three record lists served by the park API.
type RecordKind string

const (
	KindRide       RecordKind = "ride"
	KindShow       RecordKind = "show"
	KindRestaurant RecordKind = "restaurant"
)

// Valid reports whether k is one of the known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case KindRide, KindShow, KindRestaurant:
		return true
	}
	return false
}

// RideStatus is the operating state posted for an attraction.
type RideStatus string

const (
	StatusOperating RideStatus = "OPERATING"
	StatusDown      RideStatus = "DOWN"
	StatusClosed    RideStatus = "CLOSED"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RideRecord is one attraction as returned by the park API.
// A snapshot is immutable and replaced wholesale on every refresh.
// WaitTime is nil when no queue time is posted.
type RideRecord struct {
	ID       string
	Name     string
	Land     string
	Status   RideStatus
	WaitTime *int
	Park     string
	Type     string
	Location *Coordinates

	Rehab RehabWindow
}

// RehabWindow describes a scheduled maintenance closure.
// Start and End are nil when the park API did not supply them.
type RehabWindow struct {
	Active bool
	Start  *time.Time
	End    *time.Time
}
