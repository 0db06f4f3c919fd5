package domain

import (
	"slices"
	"time"
)

// Favorite is a ride, show or restaurant the user marked for quick access.
// Identity is Kind + RecordID; the remaining fields are a denormalized copy.
// Favorites are independent of the day plan.
type Favorite struct {
	Kind      RecordKind
	RecordID  string
	Name      string
	Land      string
	CreatedAt time.Time
}

// Favorites is an ordered list unique by Kind + RecordID.
type Favorites []Favorite

// Contains reports whether a favorite with the same identity is present.
func (fs Favorites) Contains(kind RecordKind, recordID string) bool {
	return fs.index(kind, recordID) >= 0
}

// Toggle removes f when a favorite with the same identity exists, otherwise
// appends a copy of it. It returns the new list and whether f was added.
// The receiver is not modified.
func (fs Favorites) Toggle(f Favorite) (Favorites, bool) {
	if i := fs.index(f.Kind, f.RecordID); i >= 0 {
		return slices.Delete(slices.Clone(fs), i, i+1), false
	}
	return append(slices.Clone(fs), f), true
}

func (fs Favorites) index(kind RecordKind, recordID string) int {
	return slices.IndexFunc(fs, func(f Favorite) bool {
		return f.Kind == kind && f.RecordID == recordID
	})
}
