package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/handler"
	"github.com/magicjourney/backend/internal/service"
)

// ---- mock WaitTimeServicer -------------------------------------------------

// mockWaitTimeServicer is a test double for handler.WaitTimeServicer.
// Set only the method fields your test needs.
type mockWaitTimeServicer struct {
	list          func(ctx context.Context, f domain.RideFilter, p domain.PaginationParams) ([]domain.RideRecord, int, error)
	getByID       func(ctx context.Context, id string) (domain.RideRecord, error)
	availability  func(ctx context.Context, id string, dates []domain.Day) (service.Availability, error)
	upcomingShows func(ctx context.Context, now time.Time) ([]domain.ShowRecord, error)
	restaurants   func(ctx context.Context) ([]domain.RestaurantRecord, error)
}

func (m *mockWaitTimeServicer) List(ctx context.Context, f domain.RideFilter, p domain.PaginationParams) ([]domain.RideRecord, int, error) {
	return m.list(ctx, f, p)
}
func (m *mockWaitTimeServicer) GetByID(ctx context.Context, id string) (domain.RideRecord, error) {
	return m.getByID(ctx, id)
}
func (m *mockWaitTimeServicer) Availability(ctx context.Context, id string, dates []domain.Day) (service.Availability, error) {
	return m.availability(ctx, id, dates)
}
func (m *mockWaitTimeServicer) UpcomingShows(ctx context.Context, now time.Time) ([]domain.ShowRecord, error) {
	return m.upcomingShows(ctx, now)
}
func (m *mockWaitTimeServicer) Restaurants(ctx context.Context) ([]domain.RestaurantRecord, error) {
	return m.restaurants(ctx)
}

// compile-time check: mockWaitTimeServicer must satisfy handler.WaitTimeServicer.
var _ handler.WaitTimeServicer = (*mockWaitTimeServicer)(nil)

// ---- mock PlanServicer -----------------------------------------------------

type mockPlanServicer struct {
	days       func(ctx context.Context) ([]domain.Day, error)
	activities func(ctx context.Context, day domain.Day) ([]domain.Activity, error)
	add        func(ctx context.Context, day domain.Day, kind domain.RecordKind, recordID, category string) (domain.Activity, error)
	remove     func(ctx context.Context, day domain.Day, id uuid.UUID) error
	reorder    func(ctx context.Context, day domain.Day, from, to int) ([]domain.Activity, error)
	toggleDone func(ctx context.Context, day domain.Day, id uuid.UUID) (domain.Activity, error)
}

func (m *mockPlanServicer) Days(ctx context.Context) ([]domain.Day, error) {
	return m.days(ctx)
}
func (m *mockPlanServicer) Activities(ctx context.Context, day domain.Day) ([]domain.Activity, error) {
	return m.activities(ctx, day)
}
func (m *mockPlanServicer) Add(ctx context.Context, day domain.Day, kind domain.RecordKind, recordID, category string) (domain.Activity, error) {
	return m.add(ctx, day, kind, recordID, category)
}
func (m *mockPlanServicer) Remove(ctx context.Context, day domain.Day, id uuid.UUID) error {
	return m.remove(ctx, day, id)
}
func (m *mockPlanServicer) Reorder(ctx context.Context, day domain.Day, from, to int) ([]domain.Activity, error) {
	return m.reorder(ctx, day, from, to)
}
func (m *mockPlanServicer) ToggleDone(ctx context.Context, day domain.Day, id uuid.UUID) (domain.Activity, error) {
	return m.toggleDone(ctx, day, id)
}

var _ handler.PlanServicer = (*mockPlanServicer)(nil)

// ---- mock FavoriteServicer -------------------------------------------------

type mockFavoriteServicer struct {
	list   func(ctx context.Context) (domain.Favorites, error)
	toggle func(ctx context.Context, kind domain.RecordKind, recordID string) (domain.Favorite, bool, error)
}

func (m *mockFavoriteServicer) List(ctx context.Context) (domain.Favorites, error) {
	return m.list(ctx)
}
func (m *mockFavoriteServicer) Toggle(ctx context.Context, kind domain.RecordKind, recordID string) (domain.Favorite, bool, error) {
	return m.toggle(ctx, kind, recordID)
}

var _ handler.FavoriteServicer = (*mockFavoriteServicer)(nil)

// ---- mock PreferenceServicer -----------------------------------------------

type mockPreferenceServicer struct {
	get func(ctx context.Context) (domain.UserPreferences, error)
	put func(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error)
}

func (m *mockPreferenceServicer) Get(ctx context.Context) (domain.UserPreferences, error) {
	return m.get(ctx)
}
func (m *mockPreferenceServicer) Put(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	return m.put(ctx, prefs)
}

var _ handler.PreferenceServicer = (*mockPreferenceServicer)(nil)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func intPtr(n int) *int { return &n }

// routes wires a Server with the given mocks and returns its router.
func routes(opts ...func(*deps)) http.Handler {
	d := &deps{}
	for _, o := range opts {
		o(d)
	}
	srv := handler.NewServer(d.rides, d.plans, d.favorites, d.preferences, d.export,
		handler.WithClock(func() time.Time { return fixedNow }))
	return srv.Routes()
}

type deps struct {
	rides       handler.WaitTimeServicer
	plans       handler.PlanServicer
	favorites   handler.FavoriteServicer
	preferences handler.PreferenceServicer
	export      handler.ExportServicer
}

var fixedNow = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func withRides(s handler.WaitTimeServicer) func(*deps)     { return func(d *deps) { d.rides = s } }
func withPlans(s handler.PlanServicer) func(*deps)         { return func(d *deps) { d.plans = s } }
func withFavorites(s handler.FavoriteServicer) func(*deps) { return func(d *deps) { d.favorites = s } }
func withPreferences(s handler.PreferenceServicer) func(*deps) {
	return func(d *deps) { d.preferences = s }
}
func withExport(s handler.ExportServicer) func(*deps) { return func(d *deps) { d.export = s } }
