package parks

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/magicjourney/backend/internal/domain"
)

// Catalog holds the most recent snapshot of each record list.
// Lists are replaced wholesale and never mutated in place, so the slices
// returned by the getters may be shared between readers.
//
// Every fetch takes a sequence number from NextSeq before it starts. A
// result is applied only if its sequence is newer than the last one applied
// for that list, so a slow response can never overwrite a fresher one.
type Catalog struct {
	seq atomic.Uint64

	mu          sync.RWMutex
	rides       []domain.RideRecord
	shows       []domain.ShowRecord
	restaurants []domain.RestaurantRecord
	applied     map[domain.RecordKind]uint64
	updatedAt   map[domain.RecordKind]time.Time
	now         func() time.Time
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		applied:   make(map[domain.RecordKind]uint64),
		updatedAt: make(map[domain.RecordKind]time.Time),
		now:       time.Now,
	}
}

// NextSeq returns a new, strictly increasing fetch sequence number.
func (c *Catalog) NextSeq() uint64 {
	return c.seq.Add(1)
}

// ReplaceRides installs rides fetched under seq. It reports false and
// leaves the catalog unchanged when a newer fetch has already been applied.
func (c *Catalog) ReplaceRides(seq uint64, rides []domain.RideRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.accept(domain.KindRide, seq) {
		return false
	}
	c.rides = slices.Clone(rides)
	return true
}

// ReplaceShows is ReplaceRides for shows.
func (c *Catalog) ReplaceShows(seq uint64, shows []domain.ShowRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.accept(domain.KindShow, seq) {
		return false
	}
	c.shows = slices.Clone(shows)
	return true
}

// ReplaceRestaurants is ReplaceRides for restaurants.
func (c *Catalog) ReplaceRestaurants(seq uint64, restaurants []domain.RestaurantRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.accept(domain.KindRestaurant, seq) {
		return false
	}
	c.restaurants = slices.Clone(restaurants)
	return true
}

// accept must be called with mu held.
func (c *Catalog) accept(kind domain.RecordKind, seq uint64) bool {
	if seq <= c.applied[kind] {
		return false
	}
	c.applied[kind] = seq
	c.updatedAt[kind] = c.now()
	return true
}

// Rides returns the current ride snapshot.
func (c *Catalog) Rides() []domain.RideRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rides
}

// Shows returns the current show snapshot.
func (c *Catalog) Shows() []domain.ShowRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shows
}

// Restaurants returns the current restaurant snapshot.
func (c *Catalog) Restaurants() []domain.RestaurantRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.restaurants
}

// UpdatedAt returns when the list of the given kind was last replaced.
// The zero time means it has never been loaded.
func (c *Catalog) UpdatedAt(kind domain.RecordKind) time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt[kind]
}

// Ride looks up a ride by id.
func (c *Catalog) Ride(id string) (domain.RideRecord, bool) {
	rides := c.Rides()
	i := slices.IndexFunc(rides, func(r domain.RideRecord) bool { return r.ID == id })
	if i < 0 {
		return domain.RideRecord{}, false
	}
	return rides[i], true
}

// Show looks up a show by id.
func (c *Catalog) Show(id string) (domain.ShowRecord, bool) {
	shows := c.Shows()
	i := slices.IndexFunc(shows, func(s domain.ShowRecord) bool { return s.ID == id })
	if i < 0 {
		return domain.ShowRecord{}, false
	}
	return shows[i], true
}

// Restaurant looks up a restaurant by id.
func (c *Catalog) Restaurant(id string) (domain.RestaurantRecord, bool) {
	restaurants := c.Restaurants()
	i := slices.IndexFunc(restaurants, func(r domain.RestaurantRecord) bool { return r.ID == id })
	if i < 0 {
		return domain.RestaurantRecord{}, false
	}
	return restaurants[i], true
}

// Lookup resolves any record kind into the denormalized copy stored on
// activities and favorites.
func (c *Catalog) Lookup(kind domain.RecordKind, id string) (domain.ActivityRecord, bool) {
	switch kind {
	case domain.KindRide:
		if r, ok := c.Ride(id); ok {
			return domain.ActivityRecord{Kind: kind, RecordID: r.ID, Name: r.Name, Land: r.Land, Location: r.Location}, true
		}
	case domain.KindShow:
		if s, ok := c.Show(id); ok {
			return domain.ActivityRecord{Kind: kind, RecordID: s.ID, Name: s.Name, Land: s.Land, Location: s.Location}, true
		}
	case domain.KindRestaurant:
		if r, ok := c.Restaurant(id); ok {
			return domain.ActivityRecord{Kind: kind, RecordID: r.ID, Name: r.Name, Land: r.Land, Location: r.Location}, true
		}
	}
	return domain.ActivityRecord{}, false
}
