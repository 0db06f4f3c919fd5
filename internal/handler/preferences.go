package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/magicjourney/backend/internal/domain"
)

// GetPreferences handles GET /preferences.
// Responds 404 until the onboarding answers have been saved once.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.preferences.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "preferences not set")
		return
	}
	writeJSON(w, http.StatusOK, preferencesToResponse(prefs))
}

// PutPreferences handles PUT /preferences.
// The body replaces the stored preferences as a whole.
func (s *Server) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var body Preferences
	if !decodeBody(w, r, &body) {
		return
	}

	saved, err := s.preferences.Put(r.Context(), requestToPreferences(body))
	if err != nil {
		writeServiceError(w, r, err, "preferences not set")
		return
	}
	writeJSON(w, http.StatusOK, preferencesToResponse(saved))
}

// --- mapping helpers --------------------------------------------------------

func requestToPreferences(body Preferences) domain.UserPreferences {
	p := domain.UserPreferences{
		VisitedBefore: body.VisitedDisney,
		ParkStyle:     domain.ParkStyle(derefString(body.ParkStyle)),
	}
	if body.VisitDate != nil {
		d := domain.NewDay(body.VisitDate.Time)
		p.VisitDate = &d
	}
	return p
}

func preferencesToResponse(p domain.UserPreferences) Preferences {
	out := Preferences{
		VisitedDisney: p.VisitedBefore,
		ParkStyle:     optString(string(p.ParkStyle)),
	}
	if p.VisitDate != nil {
		out.VisitDate = &openapi_types.Date{Time: p.VisitDate.Time()}
	}
	return out
}
