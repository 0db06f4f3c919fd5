package parks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/magicjourney/backend/internal/domain"
)

var errMissingID = errors.New("record has no id")

// flexID accepts an identifier sent either as a JSON string or a number.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// waitMinutes is a posted wait time. A whole number, given as a JSON number
// or numeric string, decodes to its value. Anything else decodes to nil
// (unknown wait) instead of failing the whole record.
type waitMinutes struct {
	v *int
}

func (w *waitMinutes) UnmarshalJSON(b []byte) error {
	w.v = nil
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		b = []byte(strings.TrimSpace(s))
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	w.v = &n
	return nil
}

type wireCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (w wireCoordinates) toDomain() *domain.Coordinates {
	if w.Latitude == nil || w.Longitude == nil {
		return nil
	}
	return &domain.Coordinates{Latitude: *w.Latitude, Longitude: *w.Longitude}
}

type wireRide struct {
	ID             flexID      `json:"id"`
	Name           string      `json:"name"`
	Land           string      `json:"land"`
	Status         string      `json:"status"`
	WaitTime       waitMinutes `json:"waitTime"`
	Park           flexID      `json:"park"`
	Type           string      `json:"type"`
	Rehab          bool        `json:"rehab"`
	RehabStartDate *string     `json:"rehabStartDate"`
	RehabEndDate   *string     `json:"rehabEndDate"`
	wireCoordinates
}

func decodeRide(raw json.RawMessage) (domain.RideRecord, error) {
	var w wireRide
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.RideRecord{}, err
	}
	if w.ID == "" {
		return domain.RideRecord{}, errMissingID
	}
	return domain.RideRecord{
		ID:       string(w.ID),
		Name:     w.Name,
		Land:     w.Land,
		Status:   parseStatus(w.Status),
		WaitTime: w.WaitTime.v,
		Park:     string(w.Park),
		Type:     w.Type,
		Location: w.toDomain(),
		Rehab: domain.RehabWindow{
			Active: w.Rehab,
			Start:  parseDate(w.RehabStartDate),
			End:    parseDate(w.RehabEndDate),
		},
	}, nil
}

type wireShow struct {
	ID        flexID   `json:"id"`
	Name      string   `json:"name"`
	Land      string   `json:"land"`
	Showtimes []string `json:"showtimes"`
	wireCoordinates
}

func decodeShow(raw json.RawMessage) (domain.ShowRecord, error) {
	var w wireShow
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.ShowRecord{}, err
	}
	if w.ID == "" {
		return domain.ShowRecord{}, errMissingID
	}
	times := make([]time.Time, 0, len(w.Showtimes))
	for _, s := range w.Showtimes {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			times = append(times, t)
		}
	}
	return domain.ShowRecord{
		ID:        string(w.ID),
		Name:      w.Name,
		Land:      w.Land,
		Showtimes: times,
		Location:  w.toDomain(),
	}, nil
}

type wireRestaurant struct {
	ID          flexID `json:"id"`
	Name        string `json:"name"`
	Land        string `json:"land"`
	Park        flexID `json:"park"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
	wireCoordinates
}

func decodeRestaurant(raw json.RawMessage) (domain.RestaurantRecord, error) {
	var w wireRestaurant
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.RestaurantRecord{}, err
	}
	if w.ID == "" {
		return domain.RestaurantRecord{}, errMissingID
	}
	return domain.RestaurantRecord{
		ID:          string(w.ID),
		Name:        w.Name,
		Land:        w.Land,
		Park:        string(w.Park),
		Cuisine:     w.Cuisine,
		Description: w.Description,
		PriceRange:  w.PriceRange,
		Location:    w.toDomain(),
	}, nil
}

// parseStatus maps the posted status onto the enum. Anything unknown is
// treated as CLOSED so it is hidden by the closed-rides filter.
func parseStatus(s string) domain.RideStatus {
	switch st := domain.RideStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case domain.StatusOperating, domain.StatusDown, domain.StatusClosed:
		return st
	}
	return domain.StatusClosed
}

// parseDate accepts "2006-01-02" or RFC 3339. Missing or unparsable values
// yield nil, which makes an active rehab window unavailable.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse(domain.DayLayout, *s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	return nil
}
