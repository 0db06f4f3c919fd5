package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/magicjourney/backend/internal/domain"
)

// --- parameter binding -------------------------------------------------------

// pathDay binds the {day} path parameter.
func pathDay(r *http.Request) (domain.Day, error) {
	var date openapi_types.Date
	err := runtime.BindStyledParameterWithOptions("simple", "day", chi.URLParam(r, "day"), &date,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", err
	}
	return domain.NewDay(date.Time), nil
}

// pathActivityID binds the {activityId} path parameter.
func pathActivityID(r *http.Request) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "activityId", chi.URLParam(r, "activityId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

// pageParams binds the optional ?page= and ?limit= query parameters.
func pageParams(r *http.Request) (domain.PaginationParams, error) {
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return domain.PaginationParams{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

// --- mapping helpers ----------------------------------------------------------

// optString returns nil for an empty string so the field is omitted.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString returns "" for nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toLocation(c *domain.Coordinates) *Location {
	if c == nil {
		return nil
	}
	return &Location{Latitude: c.Latitude, Longitude: c.Longitude}
}

// dayToDate converts a domain.Day to the wire date type.
func dayToDate(d domain.Day) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}
