package parks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/parks"
)

// newParkServer serves fixed bodies per path and 404 for anything else.
func newParkServer(t *testing.T, bodies map[string]string) *parks.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return parks.NewClient(srv.URL, srv.Client(), nil)
}

func TestClient_FetchAttractions_FailSoftDecode(t *testing.T) {
	c := newParkServer(t, map[string]string{
		"/api/attractions": `[
			{"id": 1, "name": "A", "land": "Frontierland", "status": "OPERATING", "waitTime": 10, "park": "P1", "type": "thrill"},
			{"id": "P1DA03", "name": "B", "status": "closed", "waitTime": null},
			{"name": "no id"},
			{"id": 4, "name": "weird status", "status": "REFURBISHMENT"},
			{"id": 5, "name": "bad wait", "waitTime": "ten"},
			{"id": 7, "name": "bad rehab flag", "rehab": "yes"},
			{"id": 6, "name": "Rehab", "status": "CLOSED", "rehab": true, "rehabStartDate": "2025-03-01", "rehabEndDate": "2025-03-10T00:00:00Z"}
		]`,
	})

	rides, err := c.FetchAttractions(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 5, "elements without id or with malformed required fields are skipped")

	assert.Equal(t, "1", rides[0].ID)
	require.NotNil(t, rides[0].WaitTime)
	assert.Equal(t, 10, *rides[0].WaitTime)
	assert.Equal(t, domain.StatusOperating, rides[0].Status)

	assert.Equal(t, "P1DA03", rides[1].ID)
	assert.Nil(t, rides[1].WaitTime)
	assert.Equal(t, domain.StatusClosed, rides[1].Status)

	assert.Equal(t, domain.StatusClosed, rides[2].Status, "unknown status maps to CLOSED")

	assert.Equal(t, "5", rides[3].ID, "a malformed wait time keeps the ride")
	assert.Nil(t, rides[3].WaitTime)

	rehab := rides[4].Rehab
	assert.True(t, rehab.Active)
	require.NotNil(t, rehab.Start)
	require.NotNil(t, rehab.End)
	assert.Equal(t, domain.Day("2025-03-01"), domain.NewDay(*rehab.Start))
	assert.Equal(t, domain.Day("2025-03-10"), domain.NewDay(*rehab.End))
}

func TestClient_FetchAttractions_WaitTimeForms(t *testing.T) {
	c := newParkServer(t, map[string]string{
		"/api/attractions": `[
			{"id": "a", "waitTime": 15},
			{"id": "b", "waitTime": "20"},
			{"id": "c", "waitTime": 12.0},
			{"id": "d", "waitTime": 12.5},
			{"id": "e", "waitTime": -3},
			{"id": "f", "waitTime": {"minutes": 5}},
			{"id": "g"}
		]`,
	})

	rides, err := c.FetchAttractions(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 7)
	want := map[string]*int{"a": intPtr(15), "b": intPtr(20), "c": intPtr(12), "d": nil, "e": nil, "f": nil, "g": nil}
	for _, r := range rides {
		assert.Equal(t, want[r.ID], r.WaitTime, "ride %s", r.ID)
	}
}

func TestClient_FetchShows(t *testing.T) {
	c := newParkServer(t, map[string]string{
		"/api/shows": `[
			{"id": 7, "name": "Parade", "showtimes": ["2025-06-01T17:30:00Z", "not a time", "2025-06-01T11:00:00Z"], "latitude": 48.87, "longitude": 2.77}
		]`,
	})

	shows, err := c.FetchShows(context.Background())

	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Len(t, shows[0].Showtimes, 2)
	require.NotNil(t, shows[0].Location)
	assert.InDelta(t, 48.87, shows[0].Location.Latitude, 1e-9)
}

func TestClient_FetchRestaurants_MissingOptionalFields(t *testing.T) {
	c := newParkServer(t, map[string]string{
		"/api/restaurants": `[{"id": "r1", "name": "Agrabah Cafe"}]`,
	})

	got, err := c.FetchRestaurants(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Description)
	assert.Nil(t, got[0].Location)
}

func TestClient_NonArrayPayload(t *testing.T) {
	c := newParkServer(t, map[string]string{
		"/api/attractions": `{"error": "maintenance"}`,
	})

	_, err := c.FetchAttractions(context.Background())

	assert.ErrorIs(t, err, parks.ErrFetch)
}

func TestClient_ErrorStatus(t *testing.T) {
	c := newParkServer(t, map[string]string{})

	_, err := c.FetchShows(context.Background())

	assert.ErrorIs(t, err, parks.ErrFetch)
	assert.ErrorContains(t, err, "404")
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c := parks.NewClient(srv.URL, srv.Client(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchAttractions(ctx)

	assert.ErrorIs(t, err, parks.ErrFetch)
}

func intPtr(v int) *int { return &v }
