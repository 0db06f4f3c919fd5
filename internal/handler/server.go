// Package handler implements the HTTP handlers for the Magic Journey API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, attraction.go, plan.go, etc.) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/service"
)

// WaitTimeServicer defines the park data operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the catalog or service layer.
type WaitTimeServicer interface {
	List(ctx context.Context, f domain.RideFilter, p domain.PaginationParams) ([]domain.RideRecord, int, error)
	GetByID(ctx context.Context, id string) (domain.RideRecord, error)
	Availability(ctx context.Context, id string, dates []domain.Day) (service.Availability, error)
	UpcomingShows(ctx context.Context, now time.Time) ([]domain.ShowRecord, error)
	Restaurants(ctx context.Context) ([]domain.RestaurantRecord, error)
}

// PlanServicer defines the day plan operations.
type PlanServicer interface {
	Days(ctx context.Context) ([]domain.Day, error)
	Activities(ctx context.Context, day domain.Day) ([]domain.Activity, error)
	Add(ctx context.Context, day domain.Day, kind domain.RecordKind, recordID, category string) (domain.Activity, error)
	Remove(ctx context.Context, day domain.Day, id uuid.UUID) error
	Reorder(ctx context.Context, day domain.Day, from, to int) ([]domain.Activity, error)
	ToggleDone(ctx context.Context, day domain.Day, id uuid.UUID) (domain.Activity, error)
}

// FavoriteServicer defines the favorites operations.
type FavoriteServicer interface {
	List(ctx context.Context) (domain.Favorites, error)
	Toggle(ctx context.Context, kind domain.RecordKind, recordID string) (domain.Favorite, bool, error)
}

// PreferenceServicer defines the onboarding preferences operations.
type PreferenceServicer interface {
	Get(ctx context.Context) (domain.UserPreferences, error)
	Put(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error)
}

// ExportServicer defines the plan export operation.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds every dependency of the HTTP handlers.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	rides       WaitTimeServicer
	plans       PlanServicer
	favorites   FavoriteServicer
	preferences PreferenceServicer
	export      ExportServicer
	openAPI     []byte
	now         func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithOpenAPI serves spec at GET /openapi.yaml.
func WithOpenAPI(spec []byte) Option {
	return func(s *Server) { s.openAPI = spec }
}

// WithClock overrides time.Now, used to narrow show schedules.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil in tests that do not exercise its routes.
func NewServer(rides WaitTimeServicer, plans PlanServicer, favorites FavoriteServicer, preferences PreferenceServicer, export ExportServicer, opts ...Option) *Server {
	s := &Server{
		rides:       rides,
		plans:       plans,
		favorites:   favorites,
		preferences: preferences,
		export:      export,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes returns the chi router with every endpoint registered.
// Cross-cutting middleware (logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	if s.openAPI != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Route("/attractions", func(r chi.Router) {
		r.Get("/", s.ListAttractions)
		r.Get("/{id}", s.GetAttraction)
		r.Get("/{id}/availability", s.GetAttractionAvailability)
	})
	r.Get("/shows", s.ListShows)
	r.Get("/restaurants", s.ListRestaurants)

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", s.ListPlanDays)
		r.Get("/{day}/activities", s.ListActivities)
		r.Post("/{day}/activities", s.AddActivity)
		r.Delete("/{day}/activities/{activityId}", s.RemoveActivity)
		r.Post("/{day}/activities/{activityId}/toggle", s.ToggleActivity)
		r.Post("/{day}/reorder", s.ReorderActivities)
	})

	r.Get("/favorites", s.ListFavorites)
	r.Post("/favorites/toggle", s.ToggleFavorite)

	r.Get("/preferences", s.GetPreferences)
	r.Put("/preferences", s.PutPreferences)

	r.Get("/export", s.GetExport)

	return r
}
