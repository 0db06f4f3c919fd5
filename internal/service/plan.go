package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/repo"
)

// defaultCategory is used when a caller adds an activity without a category.
var defaultCategory = map[domain.RecordKind]string{
	domain.KindRide:       "attraction",
	domain.KindShow:       "show",
	domain.KindRestaurant: "restaurant",
}

// PlanService owns the process-wide day plan.
//
// The plan lives in memory; each day is hydrated from PlanRepo on first use
// and written back as a whole snapshot after every mutation. If the write
// fails the in-memory day is rolled back so memory and storage agree.
type PlanService struct {
	repo    repo.PlanRepo
	catalog Catalog
	log     *slog.Logger

	mu     sync.Mutex
	plan   *domain.Plan
	loaded map[domain.Day]bool
}

// NewPlanService constructs a PlanService. A nil logger falls back to slog.Default().
func NewPlanService(r repo.PlanRepo, c Catalog, log *slog.Logger) *PlanService {
	if log == nil {
		log = slog.Default()
	}
	return &PlanService{
		repo:    r,
		catalog: c,
		log:     log,
		plan:    domain.NewPlan(),
		loaded:  make(map[domain.Day]bool),
	}
}

// Days returns every day with at least one planned activity.
func (s *PlanService) Days(ctx context.Context) ([]domain.Day, error) {
	days, err := s.repo.ListDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Days: %w", err)
	}
	if days == nil {
		return []domain.Day{}, nil
	}
	return days, nil
}

// Activities returns day's activities in display order: not done first,
// then done, each group in stored order.
func (s *PlanService) Activities(ctx context.Context, day domain.Day) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx, day); err != nil {
		return nil, fmt.Errorf("service.PlanService.Activities: %w", err)
	}
	return s.plan.ForDisplay(day), nil
}

// Add plans the record identified by kind and recordID on day.
// Returns domain.ErrValidation for an unknown kind, domain.ErrNotFound when
// the record is not in the current park data, domain.ErrUnavailable when a
// ride is closed for rehab that day, and domain.ErrDuplicateActivity when
// it is already planned.
func (s *PlanService) Add(ctx context.Context, day domain.Day, kind domain.RecordKind, recordID, category string) (domain.Activity, error) {
	if !kind.Valid() {
		return domain.Activity{}, fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, kind)
	}
	record, ok := s.catalog.Lookup(kind, recordID)
	if !ok {
		return domain.Activity{}, fmt.Errorf("service.PlanService.Add: %s %q: %w", kind, recordID, domain.ErrNotFound)
	}
	if kind == domain.KindRide {
		if ride, ok := s.catalog.Ride(recordID); ok && !ride.Rehab.OpenOn(day.Time()) {
			return domain.Activity{}, fmt.Errorf("service.PlanService.Add: %s closed for rehab on %s: %w", ride.Name, day, domain.ErrUnavailable)
		}
	}
	if category == "" {
		category = defaultCategory[kind]
	}

	var added domain.Activity
	err := s.mutate(ctx, day, func(p *domain.Plan) error {
		a, err := p.Add(day, record, category)
		added = a
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.PlanService.Add: %w", err)
	}
	return added, nil
}

// Remove deletes an activity. Returns domain.ErrNotFound if it is not on day.
func (s *PlanService) Remove(ctx context.Context, day domain.Day, id uuid.UUID) error {
	err := s.mutate(ctx, day, func(p *domain.Plan) error {
		return p.Remove(day, id)
	})
	if err != nil {
		return fmt.Errorf("service.PlanService.Remove: %w", err)
	}
	return nil
}

// Reorder moves one activity within day and returns the new stored order.
// Returns domain.ErrOutOfRange for invalid indices.
func (s *PlanService) Reorder(ctx context.Context, day domain.Day, from, to int) ([]domain.Activity, error) {
	var out []domain.Activity
	err := s.mutate(ctx, day, func(p *domain.Plan) error {
		if err := p.Reorder(day, from, to); err != nil {
			return err
		}
		out = p.Activities(day)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Reorder: %w", err)
	}
	return out, nil
}

// ToggleDone flips an activity's done flag and returns it.
// Returns domain.ErrNotFound if it is not on day.
func (s *PlanService) ToggleDone(ctx context.Context, day domain.Day, id uuid.UUID) (domain.Activity, error) {
	var out domain.Activity
	err := s.mutate(ctx, day, func(p *domain.Plan) error {
		a, err := p.ToggleDone(day, id)
		out = a
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.PlanService.ToggleDone: %w", err)
	}
	return out, nil
}

// mutate applies fn to the hydrated plan and persists the day. On a failed
// write the day is restored to its state before fn ran.
func (s *PlanService) mutate(ctx context.Context, day domain.Day, fn func(p *domain.Plan) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx, day); err != nil {
		return err
	}
	before := s.plan.Activities(day)
	if err := fn(s.plan); err != nil {
		return err
	}
	if err := s.repo.SaveDay(ctx, day, s.plan.Activities(day)); err != nil {
		s.plan.Load(day, before)
		s.log.ErrorContext(ctx, "persist day plan failed", "day", day.String(), "error", err)
		return err
	}
	return nil
}

// hydrate must be called with mu held.
func (s *PlanService) hydrate(ctx context.Context, day domain.Day) error {
	if s.loaded[day] {
		return nil
	}
	activities, err := s.repo.GetDay(ctx, day)
	if err != nil {
		return err
	}
	s.plan.Load(day, activities)
	s.loaded[day] = true
	return nil
}
