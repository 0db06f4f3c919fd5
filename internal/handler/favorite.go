package handler

import (
	"net/http"

	"github.com/magicjourney/backend/internal/domain"
)

// ListFavorites handles GET /favorites.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := s.favorites.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "favorite not found")
		return
	}

	out := make([]Favorite, len(favs))
	for i, f := range favs {
		out[i] = favoriteToResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// ToggleFavorite handles POST /favorites/toggle.
// Adds the record when it is not a favorite yet, removes it otherwise.
// Responds 201 on add and 200 on removal.
func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var body ToggleFavoriteRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.RecordId == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("record_id is required"))
		return
	}

	fav, added, err := s.favorites.Toggle(r.Context(), domain.RecordKind(body.Kind), body.RecordId)
	if err != nil {
		writeServiceError(w, r, err, body.Kind+" not found")
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, ToggleFavoriteResponse{Added: added, Favorite: favoriteToResponse(fav)})
}

func favoriteToResponse(f domain.Favorite) Favorite {
	return Favorite{
		Kind:      string(f.Kind),
		RecordId:  f.RecordID,
		Name:      f.Name,
		Land:      optString(f.Land),
		CreatedAt: f.CreatedAt,
	}
}
