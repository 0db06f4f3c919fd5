package domain

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// ActivityRecord is the denormalized copy of the ride, show or restaurant an
// activity refers to. It is captured when the activity is planned and is not
// refreshed when the park data changes.
type ActivityRecord struct {
	Kind     RecordKind   `json:"kind"`
	RecordID string       `json:"record_id"`
	Name     string       `json:"name"`
	Land     string       `json:"land,omitempty"`
	Location *Coordinates `json:"location,omitempty"`
}

// Activity is one planned item on a day.
// Position is the index within the day's stored order.
type Activity struct {
	ID       uuid.UUID      `json:"id"`
	Day      Day            `json:"day"`
	Record   ActivityRecord `json:"record"`
	Category string         `json:"category,omitempty"`
	Done     bool           `json:"done"`
	Position int            `json:"position"`
}

// Plan maps each calendar day to its ordered activities.
// The zero value is not usable; construct with NewPlan.
// Plan is not safe for concurrent use.
type Plan struct {
	days  map[Day][]Activity
	newID func() uuid.UUID
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{days: make(map[Day][]Activity), newID: uuid.New}
}

// Load replaces the stored activities for day with a copy of activities,
// renumbering positions. An empty slice clears the day.
func (p *Plan) Load(day Day, activities []Activity) {
	if len(activities) == 0 {
		delete(p.days, day)
		return
	}
	list := slices.Clone(activities)
	for i := range list {
		list[i].Day = day
	}
	p.days[day] = renumber(list)
}

// Has reports whether day has any stored activities.
func (p *Plan) Has(day Day) bool {
	_, ok := p.days[day]
	return ok
}

// Days returns every day with at least one activity, ascending.
func (p *Plan) Days() []Day {
	out := make([]Day, 0, len(p.days))
	for d := range p.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Activities returns a copy of day's activities in stored order.
func (p *Plan) Activities(day Day) []Activity {
	return slices.Clone(p.days[day])
}

// Add appends a new, not-done activity for record to day.
// Returns ErrDuplicateActivity if day already references the same record.
func (p *Plan) Add(day Day, record ActivityRecord, category string) (Activity, error) {
	list := p.days[day]
	for _, a := range list {
		if a.Record.Kind == record.Kind && a.Record.RecordID == record.RecordID {
			return Activity{}, fmt.Errorf("%w: %s %s on %s", ErrDuplicateActivity, record.Kind, record.RecordID, day)
		}
	}
	a := Activity{
		ID:       p.newID(),
		Day:      day,
		Record:   record,
		Category: category,
		Position: len(list),
	}
	p.days[day] = append(list, a)
	return a, nil
}

// Remove deletes the activity with the given id from day.
// Returns ErrNotFound if it is not there.
func (p *Plan) Remove(day Day, id uuid.UUID) error {
	list := p.days[day]
	i := indexOf(list, id)
	if i < 0 {
		return ErrNotFound
	}
	list = slices.Delete(slices.Clone(list), i, i+1)
	if len(list) == 0 {
		delete(p.days, day)
		return nil
	}
	p.days[day] = renumber(list)
	return nil
}

// Reorder moves the activity at index from to index to, shifting the ones
// in between by one. Returns ErrOutOfRange if either index is invalid.
func (p *Plan) Reorder(day Day, from, to int) error {
	list := p.days[day]
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return fmt.Errorf("%w: from=%d to=%d len=%d", ErrOutOfRange, from, to, len(list))
	}
	if from == to {
		return nil
	}
	moved := list[from]
	list = slices.Delete(slices.Clone(list), from, from+1)
	list = slices.Insert(list, to, moved)
	p.days[day] = renumber(list)
	return nil
}

// ToggleDone flips the done flag of the activity with the given id and
// returns its new state. Returns ErrNotFound if it is not on day.
func (p *Plan) ToggleDone(day Day, id uuid.UUID) (Activity, error) {
	list := p.days[day]
	i := indexOf(list, id)
	if i < 0 {
		return Activity{}, ErrNotFound
	}
	list[i].Done = !list[i].Done
	return list[i], nil
}

// ForDisplay returns day's not-done activities in stored order followed by
// the done ones in stored order. Stored order is unchanged.
func (p *Plan) ForDisplay(day Day) []Activity {
	return DisplayOrder(p.days[day])
}

// DisplayOrder partitions activities into not-done then done, keeping the
// relative order within each group.
func DisplayOrder(activities []Activity) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if !a.Done {
			out = append(out, a)
		}
	}
	for _, a := range activities {
		if a.Done {
			out = append(out, a)
		}
	}
	return out
}

func indexOf(list []Activity, id uuid.UUID) int {
	return slices.IndexFunc(list, func(a Activity) bool { return a.ID == id })
}

func renumber(list []Activity) []Activity {
	for i := range list {
		list[i].Position = i
	}
	return list
}
