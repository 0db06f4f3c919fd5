package handler

import (
	"net/http"
	"time"

	"github.com/magicjourney/backend/internal/domain"
)

// ListShows handles GET /shows.
// Each show carries only its showtimes after the current time.
func (s *Server) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.rides.UpcomingShows(r.Context(), s.now())
	if err != nil {
		writeServiceError(w, r, err, "show not found")
		return
	}

	out := make([]Show, len(shows))
	for i, show := range shows {
		out[i] = Show{
			Id:        show.ID,
			Name:      show.Name,
			Land:      show.Land,
			Showtimes: show.Showtimes,
			Location:  toLocation(show.Location),
		}
		if out[i].Showtimes == nil {
			out[i].Showtimes = []time.Time{}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// ListRestaurants handles GET /restaurants.
func (s *Server) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.rides.Restaurants(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "restaurant not found")
		return
	}

	out := make([]Restaurant, len(restaurants))
	for i, rest := range restaurants {
		out[i] = restaurantToResponse(rest)
	}
	writeJSON(w, http.StatusOK, out)
}

func restaurantToResponse(r domain.RestaurantRecord) Restaurant {
	return Restaurant{
		Id:          r.ID,
		Name:        r.Name,
		Land:        r.Land,
		Park:        r.Park,
		Cuisine:     optString(r.Cuisine),
		Description: optString(r.Description),
		PriceRange:  optString(r.PriceRange),
		Location:    toLocation(r.Location),
	}
}
