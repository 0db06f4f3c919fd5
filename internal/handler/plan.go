package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/magicjourney/backend/internal/domain"
)

// ListPlanDays handles GET /plans.
// Returns every day that has at least one planned activity, ascending.
func (s *Server) ListPlanDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.plans.Days(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "plan not found")
		return
	}

	out := PlanDays{Days: make([]openapi_types.Date, len(days))}
	for i, d := range days {
		out.Days[i] = dayToDate(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListActivities handles GET /plans/{day}/activities.
// Activities come back in display order: pending first, then done.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	day, err := pathDay(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}

	acts, err := s.plans.Activities(r.Context(), day)
	if err != nil {
		writeServiceError(w, r, err, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// AddActivity handles POST /plans/{day}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	day, err := pathDay(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	var body AddActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.RecordId == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("record_id is required"))
		return
	}

	act, err := s.plans.Add(r.Context(), day, domain.RecordKind(body.Kind), body.RecordId, derefString(body.Category))
	if err != nil {
		writeServiceError(w, r, err, body.Kind+" not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(act))
}

// RemoveActivity handles DELETE /plans/{day}/activities/{activityId}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	day, err := pathDay(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	id, err := pathActivityID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}

	if err := s.plans.Remove(r.Context(), day, id); err != nil {
		writeServiceError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleActivity handles POST /plans/{day}/activities/{activityId}/toggle.
func (s *Server) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	day, err := pathDay(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	id, err := pathActivityID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}

	act, err := s.plans.ToggleDone(r.Context(), day, id)
	if err != nil {
		writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(act))
}

// ReorderActivities handles POST /plans/{day}/reorder.
// The response is the stored order after the move, not the display order.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	day, err := pathDay(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	var body ReorderRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.From == nil || body.To == nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("from and to are required"))
		return
	}

	acts, err := s.plans.Reorder(r.Context(), day, *body.From, *body.To)
	if err != nil {
		writeServiceError(w, r, err, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// --- mapping helpers --------------------------------------------------------

func activitiesToResponse(acts []domain.Activity) []Activity {
	out := make([]Activity, len(acts))
	for i, a := range acts {
		out[i] = activityToResponse(a)
	}
	return out
}

// activityToResponse maps a domain.Activity to the API type.
// Empty land and category become nil (omitted from JSON).
func activityToResponse(a domain.Activity) Activity {
	return Activity{
		Id:       a.ID,
		Day:      dayToDate(a.Day),
		Kind:     string(a.Record.Kind),
		RecordId: a.Record.RecordID,
		Name:     a.Record.Name,
		Land:     optString(a.Record.Land),
		Category: optString(a.Category),
		Done:     a.Done,
		Position: a.Position,
		Location: toLocation(a.Record.Location),
	}
}
