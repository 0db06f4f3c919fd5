package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/repo"
)

// FavoriteService implements the favorites toggle.
// Toggles are serialized so two quick taps cannot interleave their
// read-then-write and leave a duplicate.
type FavoriteService struct {
	repo    repo.FavoriteRepo
	catalog Catalog

	mu sync.Mutex
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(r repo.FavoriteRepo, c Catalog) *FavoriteService {
	return &FavoriteService{repo: r, catalog: c}
}

// List returns all favorites, oldest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FavoriteService) List(ctx context.Context) (domain.Favorites, error) {
	favs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.List: %w", err)
	}
	if favs == nil {
		return domain.Favorites{}, nil
	}
	return favs, nil
}

// Toggle adds the record to favorites if absent, otherwise removes it.
// It returns the favorite and whether it was added.
// Returns domain.ErrValidation for an unknown kind and domain.ErrNotFound
// when adding a record that is not in the current park data. Removing
// works even after the record has disappeared from the park data.
func (s *FavoriteService) Toggle(ctx context.Context, kind domain.RecordKind, recordID string) (domain.Favorite, bool, error) {
	if !kind.Valid() {
		return domain.Favorite{}, false, fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.List(ctx)
	if err != nil {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Toggle: %w", err)
	}

	f := domain.Favorite{Kind: kind, RecordID: recordID}
	if rec, ok := s.catalog.Lookup(kind, recordID); ok {
		f.Name, f.Land = rec.Name, rec.Land
	} else if !current.Contains(kind, recordID) {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Toggle: %s %q: %w", kind, recordID, domain.ErrNotFound)
	}

	if _, added := current.Toggle(f); !added {
		if err := s.repo.Delete(ctx, kind, recordID); err != nil {
			return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Toggle: %w", err)
		}
		return f, false, nil
	}

	stored, err := s.repo.Add(ctx, f)
	if err != nil {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Toggle: %w", err)
	}
	return stored, true, nil
}
