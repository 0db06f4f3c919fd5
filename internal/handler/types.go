package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// The types below mirror the schemas in spec/openapi.yaml.
// Optional fields are pointers so they are omitted rather than zero-valued.

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Location is a WGS84 point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Rehab describes a maintenance closure window.
type Rehab struct {
	Active    bool                `json:"active"`
	StartDate *openapi_types.Date `json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `json:"end_date,omitempty"`
}

// Attraction is a ride with its posted wait time.
type Attraction struct {
	Id       string    `json:"id"`
	Name     string    `json:"name"`
	Land     string    `json:"land,omitempty"`
	Status   string    `json:"status"`
	WaitTime *int      `json:"wait_time"`
	Park     string    `json:"park,omitempty"`
	Type     string    `json:"type,omitempty"`
	Location *Location `json:"location,omitempty"`
	Rehab    *Rehab    `json:"rehab,omitempty"`
}

// AttractionList is the body of GET /attractions.
type AttractionList struct {
	Data       []Attraction `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// Availability is the body of GET /attractions/{id}/availability.
type Availability struct {
	AttractionId   string               `json:"attraction_id"`
	Available      bool                 `json:"available"`
	AvailableDates []openapi_types.Date `json:"available_dates"`
}

// Show is a show with its upcoming showtimes.
type Show struct {
	Id        string      `json:"id"`
	Name      string      `json:"name"`
	Land      string      `json:"land,omitempty"`
	Showtimes []time.Time `json:"showtimes"`
	Location  *Location   `json:"location,omitempty"`
}

// Restaurant is a dining location.
type Restaurant struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Land        string    `json:"land,omitempty"`
	Park        string    `json:"park,omitempty"`
	Cuisine     *string   `json:"cuisine,omitempty"`
	Description *string   `json:"description,omitempty"`
	PriceRange  *string   `json:"price_range,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// PlanDays is the body of GET /plans.
type PlanDays struct {
	Days []openapi_types.Date `json:"days"`
}

// Activity is one planned item.
type Activity struct {
	Id       openapi_types.UUID `json:"id"`
	Day      openapi_types.Date `json:"day"`
	Kind     string             `json:"kind"`
	RecordId string             `json:"record_id"`
	Name     string             `json:"name"`
	Land     *string            `json:"land,omitempty"`
	Category *string            `json:"category,omitempty"`
	Done     bool               `json:"done"`
	Position int                `json:"position"`
	Location *Location          `json:"location,omitempty"`
}

// AddActivityRequest is the body of POST /plans/{day}/activities.
type AddActivityRequest struct {
	Kind     string  `json:"kind"`
	RecordId string  `json:"record_id"`
	Category *string `json:"category,omitempty"`
}

// ReorderRequest is the body of POST /plans/{day}/reorder.
type ReorderRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// Favorite is a marked ride, show or restaurant.
type Favorite struct {
	Kind      string    `json:"kind"`
	RecordId  string    `json:"record_id"`
	Name      string    `json:"name"`
	Land      *string   `json:"land,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// ToggleFavoriteRequest is the body of POST /favorites/toggle.
type ToggleFavoriteRequest struct {
	Kind     string `json:"kind"`
	RecordId string `json:"record_id"`
}

// ToggleFavoriteResponse reports the outcome of a toggle.
type ToggleFavoriteResponse struct {
	Added    bool     `json:"added"`
	Favorite Favorite `json:"favorite"`
}

// Preferences is the body of GET and PUT /preferences.
type Preferences struct {
	VisitedDisney bool                `json:"visited_disney"`
	ParkStyle     *string             `json:"park_style,omitempty"`
	VisitDate     *openapi_types.Date `json:"visit_date,omitempty"`
}

// ExportRow is one planned activity in the flat export.
type ExportRow struct {
	Day        openapi_types.Date `json:"day"`
	Position   int                `json:"position"`
	ActivityId string             `json:"activity_id"`
	Kind       string             `json:"kind"`
	RecordId   string             `json:"record_id"`
	Name       string             `json:"name"`
	Land       *string            `json:"land,omitempty"`
	Category   *string            `json:"category,omitempty"`
	Done       bool               `json:"done"`
}
