// Package service contains the business logic for the Magic Journey API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// catalog calls. No SQL and no HTTP lives here.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/magicjourney/backend/internal/domain"
)

// Catalog is the read side of the in-memory park data snapshot.
// *parks.Catalog satisfies it.
type Catalog interface {
	Rides() []domain.RideRecord
	Shows() []domain.ShowRecord
	Restaurants() []domain.RestaurantRecord
	Ride(id string) (domain.RideRecord, bool)
	Lookup(kind domain.RecordKind, id string) (domain.ActivityRecord, bool)
}

// Availability is the result of checking an attraction against trip dates.
type Availability struct {
	RideID    string
	Available bool
	// Dates is the subset of the requested dates on which the ride is open.
	Dates []domain.Day
}

// WaitTimeService serves the park lists derived from the latest snapshot.
type WaitTimeService struct {
	catalog Catalog
}

// NewWaitTimeService constructs a WaitTimeService over the given catalog.
func NewWaitTimeService(c Catalog) *WaitTimeService {
	return &WaitTimeService{catalog: c}
}

// List returns one page of the filtered, wait-time-sorted rides and the total
// number of rides matching the filter.
func (s *WaitTimeService) List(_ context.Context, f domain.RideFilter, p domain.PaginationParams) ([]domain.RideRecord, int, error) {
	rides := domain.FilterAndSort(s.catalog.Rides(), f)
	return domain.Paginate(rides, p), len(rides), nil
}

// GetByID returns a single ride. Returns domain.ErrNotFound if it is not in
// the current snapshot.
func (s *WaitTimeService) GetByID(_ context.Context, id string) (domain.RideRecord, error) {
	ride, ok := s.catalog.Ride(id)
	if !ok {
		return domain.RideRecord{}, fmt.Errorf("service.WaitTimeService.GetByID: %w", domain.ErrNotFound)
	}
	return ride, nil
}

// Availability checks which of dates the ride can be visited on.
// Returns domain.ErrValidation when dates is empty and domain.ErrNotFound
// for an unknown ride.
func (s *WaitTimeService) Availability(ctx context.Context, id string, dates []domain.Day) (Availability, error) {
	if len(dates) == 0 {
		return Availability{}, fmt.Errorf("%w: at least one date is required", domain.ErrValidation)
	}
	ride, err := s.GetByID(ctx, id)
	if err != nil {
		return Availability{}, err
	}

	times := make([]time.Time, len(dates))
	for i, d := range dates {
		times[i] = d.Time()
	}
	open := domain.AvailableDates(ride.Rehab, times)

	result := Availability{RideID: ride.ID, Available: len(open) > 0, Dates: make([]domain.Day, len(open))}
	for i, t := range open {
		result.Dates[i] = domain.NewDay(t)
	}
	return result, nil
}

// UpcomingShows returns every show with its schedule narrowed to the
// showtimes after now, ascending.
func (s *WaitTimeService) UpcomingShows(_ context.Context, now time.Time) ([]domain.ShowRecord, error) {
	shows := s.catalog.Shows()
	out := make([]domain.ShowRecord, len(shows))
	for i, show := range shows {
		show.Showtimes = show.UpcomingShowtimes(now)
		out[i] = show
	}
	return out, nil
}

// Restaurants returns the current restaurant list.
// Always returns a non-nil slice so callers can safely range over it.
func (s *WaitTimeService) Restaurants(_ context.Context) ([]domain.RestaurantRecord, error) {
	restaurants := s.catalog.Restaurants()
	if restaurants == nil {
		return []domain.RestaurantRecord{}, nil
	}
	return restaurants, nil
}
