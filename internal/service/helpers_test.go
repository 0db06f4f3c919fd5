package service_test

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/parks"
	"github.com/magicjourney/backend/internal/repo"
)

// mockPlanRepo is a hand-written test double for repo.PlanRepo.
// Each method is a function field; set only the ones your test needs.
type mockPlanRepo struct {
	getDay   func(ctx context.Context, day domain.Day) ([]domain.Activity, error)
	saveDay  func(ctx context.Context, day domain.Day, activities []domain.Activity) error
	listDays func(ctx context.Context) ([]domain.Day, error)
	listAll  func(ctx context.Context) ([]domain.Activity, error)
}

func (m *mockPlanRepo) GetDay(ctx context.Context, day domain.Day) ([]domain.Activity, error) {
	return m.getDay(ctx, day)
}
func (m *mockPlanRepo) SaveDay(ctx context.Context, day domain.Day, activities []domain.Activity) error {
	return m.saveDay(ctx, day, activities)
}
func (m *mockPlanRepo) ListDays(ctx context.Context) ([]domain.Day, error) {
	return m.listDays(ctx)
}
func (m *mockPlanRepo) ListAll(ctx context.Context) ([]domain.Activity, error) {
	return m.listAll(ctx)
}

// compile-time check: mockPlanRepo must satisfy repo.PlanRepo.
var _ repo.PlanRepo = (*mockPlanRepo)(nil)

// memPlanRepo returns a mockPlanRepo backed by a map, plus the map so tests
// can inspect what was persisted.
func memPlanRepo() (*mockPlanRepo, map[domain.Day][]domain.Activity) {
	store := map[domain.Day][]domain.Activity{}
	return &mockPlanRepo{
		getDay: func(_ context.Context, day domain.Day) ([]domain.Activity, error) {
			return slices.Clone(store[day]), nil
		},
		saveDay: func(_ context.Context, day domain.Day, activities []domain.Activity) error {
			if len(activities) == 0 {
				delete(store, day)
				return nil
			}
			store[day] = slices.Clone(activities)
			return nil
		},
	}, store
}

// mockFavoriteRepo is a hand-written test double for repo.FavoriteRepo.
type mockFavoriteRepo struct {
	list   func(ctx context.Context) (domain.Favorites, error)
	add    func(ctx context.Context, f domain.Favorite) (domain.Favorite, error)
	delete func(ctx context.Context, kind domain.RecordKind, recordID string) error
}

func (m *mockFavoriteRepo) List(ctx context.Context) (domain.Favorites, error) {
	return m.list(ctx)
}
func (m *mockFavoriteRepo) Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error) {
	return m.add(ctx, f)
}
func (m *mockFavoriteRepo) Delete(ctx context.Context, kind domain.RecordKind, recordID string) error {
	return m.delete(ctx, kind, recordID)
}

// compile-time check: mockFavoriteRepo must satisfy repo.FavoriteRepo.
var _ repo.FavoriteRepo = (*mockFavoriteRepo)(nil)

// mockSettingsRepo is a hand-written test double for repo.SettingsRepo.
type mockSettingsRepo struct {
	get    func(ctx context.Context, key string) (json.RawMessage, error)
	put    func(ctx context.Context, key string, value json.RawMessage) error
	putAll func(ctx context.Context, values map[string]json.RawMessage) error
}

func (m *mockSettingsRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	return m.get(ctx, key)
}
func (m *mockSettingsRepo) Put(ctx context.Context, key string, value json.RawMessage) error {
	return m.put(ctx, key, value)
}
func (m *mockSettingsRepo) PutAll(ctx context.Context, values map[string]json.RawMessage) error {
	return m.putAll(ctx, values)
}

// compile-time check: mockSettingsRepo must satisfy repo.SettingsRepo.
var _ repo.SettingsRepo = (*mockSettingsRepo)(nil)

// ---- catalog fixture -------------------------------------------------------

func intPtr(v int) *int { return &v }

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// catalogFixture returns a catalog with three rides (one in rehab during
// 2025-03-01..2025-03-10), one show and one restaurant.
func catalogFixture() *parks.Catalog {
	c := parks.NewCatalog()
	c.ReplaceRides(c.NextSeq(), []domain.RideRecord{
		{ID: "r1", Name: "Big Thunder Mountain", Land: "Frontierland", Status: domain.StatusOperating, WaitTime: intPtr(45), Park: "P1"},
		{ID: "r2", Name: "Phantom Manor", Land: "Frontierland", Status: domain.StatusOperating, WaitTime: intPtr(5), Park: "P1"},
		{
			ID: "r3", Name: "Crush's Coaster", Land: "Worlds of Pixar", Status: domain.StatusClosed, Park: "P2",
			Rehab: domain.RehabWindow{Active: true, Start: timePtr(2025, 3, 1), End: timePtr(2025, 3, 10)},
		},
	})
	c.ReplaceShows(c.NextSeq(), []domain.ShowRecord{{ID: "s1", Name: "Disney Stars on Parade", Land: "Main Street"}})
	c.ReplaceRestaurants(c.NextSeq(), []domain.RestaurantRecord{{ID: "d1", Name: "Cafe Hyperion", Land: "Discoveryland"}})
	return c
}
