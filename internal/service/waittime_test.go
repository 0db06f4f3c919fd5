package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/parks"
	"github.com/magicjourney/backend/internal/service"
)

func TestWaitTimeService_List_FiltersSortsAndPages(t *testing.T) {
	svc := service.NewWaitTimeService(catalogFixture())
	page, limit := 1, 1

	got, total, err := svc.List(context.Background(), domain.RideFilter{HideClosedRides: true}, domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID, "shortest wait first")
}

func TestWaitTimeService_List_EmptyCatalog(t *testing.T) {
	svc := service.NewWaitTimeService(parks.NewCatalog())

	got, total, err := svc.List(context.Background(), domain.RideFilter{}, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, got)
}

func TestWaitTimeService_List_PageBeyondRangeIsEmpty(t *testing.T) {
	svc := service.NewWaitTimeService(catalogFixture())
	page, limit := math.MaxInt/20+2, 20

	got, total, err := svc.List(context.Background(), domain.RideFilter{}, domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, got)
}

func TestWaitTimeService_GetByID_NotFound(t *testing.T) {
	svc := service.NewWaitTimeService(catalogFixture())

	_, err := svc.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWaitTimeService_Availability(t *testing.T) {
	svc := service.NewWaitTimeService(catalogFixture())
	ctx := context.Background()

	got, err := svc.Availability(ctx, "r3", []domain.Day{"2025-03-05"})
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Empty(t, got.Dates)

	got, err = svc.Availability(ctx, "r3", []domain.Day{"2025-03-05", "2025-03-15"})
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Equal(t, []domain.Day{"2025-03-15"}, got.Dates)
}

func TestWaitTimeService_Availability_NoDates(t *testing.T) {
	svc := service.NewWaitTimeService(catalogFixture())

	_, err := svc.Availability(context.Background(), "r3", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWaitTimeService_UpcomingShows(t *testing.T) {
	c := parks.NewCatalog()
	at := func(h int) time.Time { return time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC) }
	c.ReplaceShows(c.NextSeq(), []domain.ShowRecord{{ID: "s1", Showtimes: []time.Time{at(18), at(10), at(15)}}})
	svc := service.NewWaitTimeService(c)

	got, err := svc.UpcomingShows(context.Background(), at(12))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []time.Time{at(15), at(18)}, got[0].Showtimes)
	assert.Len(t, c.Shows()[0].Showtimes, 3, "catalog snapshot untouched")
}
