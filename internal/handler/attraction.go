package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/magicjourney/backend/internal/domain"
)

// ListAttractions handles GET /attractions.
// Supports ?q=, ?hide_closed=, ?short_wait=, ?park=, ?type=, ?land= filters and
// ?page= / ?limit= pagination (defaults: page=1, limit=20, max=100).
// Results are sorted by wait time ascending, unknown wait times last.
func (s *Server) ListAttractions(w http.ResponseWriter, r *http.Request) {
	filter, err := rideFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	params, err := pageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}

	rides, total, err := s.rides.List(r.Context(), filter, params)
	if err != nil {
		writeServiceError(w, r, err, "attraction not found")
		return
	}

	data := make([]Attraction, len(rides))
	for i, ride := range rides {
		data[i] = rideToResponse(ride)
	}
	writeJSON(w, http.StatusOK, AttractionList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetAttraction handles GET /attractions/{id}.
func (s *Server) GetAttraction(w http.ResponseWriter, r *http.Request) {
	ride, err := s.rides.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "attraction not found")
		return
	}
	writeJSON(w, http.StatusOK, rideToResponse(ride))
}

// GetAttractionAvailability handles GET /attractions/{id}/availability?dates=2025-03-01,2025-03-02.
// The response lists the requested dates on which the attraction is not closed for rehab.
func (s *Server) GetAttractionAvailability(w http.ResponseWriter, r *http.Request) {
	var dates []openapi_types.Date
	if err := runtime.BindQueryParameter("form", false, false, "dates", r.URL.Query(), &dates); err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}

	days := make([]domain.Day, len(dates))
	for i, d := range dates {
		days[i] = domain.NewDay(d.Time)
	}

	avail, err := s.rides.Availability(r.Context(), chi.URLParam(r, "id"), days)
	if err != nil {
		writeServiceError(w, r, err, "attraction not found")
		return
	}

	out := Availability{
		AttractionId:   avail.RideID,
		Available:      avail.Available,
		AvailableDates: make([]openapi_types.Date, len(avail.Dates)),
	}
	for i, d := range avail.Dates {
		out.AvailableDates[i] = dayToDate(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// --- mapping helpers --------------------------------------------------------

// rideFilter reads the filter query parameters into a domain.RideFilter.
// Omitted selectors mean "all".
func rideFilter(r *http.Request) (domain.RideFilter, error) {
	var (
		q                    *string
		hideClosed, short    *bool
		park, rideType, land *string
	)
	query := r.URL.Query()
	bindings := []struct {
		name string
		dest any
	}{
		{"q", &q},
		{"hide_closed", &hideClosed},
		{"short_wait", &short},
		{"park", &park},
		{"type", &rideType},
		{"land", &land},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return domain.RideFilter{}, err
		}
	}

	f := domain.RideFilter{
		Search:       strings.TrimSpace(derefString(q)),
		SelectedPark: derefString(park),
		SelectedType: derefString(rideType),
		SelectedLand: derefString(land),
	}
	if hideClosed != nil {
		f.HideClosedRides = *hideClosed
	}
	if short != nil {
		f.ShowShortWaitTimesOnly = *short
	}
	return f, nil
}

// rideToResponse maps a domain.RideRecord to the API type.
func rideToResponse(ride domain.RideRecord) Attraction {
	a := Attraction{
		Id:       ride.ID,
		Name:     ride.Name,
		Land:     ride.Land,
		Status:   string(ride.Status),
		WaitTime: ride.WaitTime,
		Park:     ride.Park,
		Type:     ride.Type,
		Location: toLocation(ride.Location),
	}
	if ride.Rehab.Active {
		rehab := &Rehab{Active: true}
		if ride.Rehab.Start != nil {
			rehab.StartDate = &openapi_types.Date{Time: *ride.Rehab.Start}
		}
		if ride.Rehab.End != nil {
			rehab.EndDate = &openapi_types.Date{Time: *ride.Rehab.End}
		}
		a.Rehab = rehab
	}
	return a
}
