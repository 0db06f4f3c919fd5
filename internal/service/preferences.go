package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/repo"
)

// PreferenceService reads and writes the onboarding answers as one value.
type PreferenceService struct {
	repo repo.SettingsRepo
	log  *slog.Logger
}

// NewPreferenceService constructs a PreferenceService. A nil logger falls
// back to slog.Default().
func NewPreferenceService(r repo.SettingsRepo, log *slog.Logger) *PreferenceService {
	if log == nil {
		log = slog.Default()
	}
	return &PreferenceService{repo: r, log: log}
}

// Get returns the stored preferences.
// Returns domain.ErrNotFound when onboarding has not been completed. A
// stored value that is not valid preferences JSON counts as absent.
func (s *PreferenceService) Get(ctx context.Context) (domain.UserPreferences, error) {
	raw, err := s.repo.Get(ctx, repo.KeyUserPreferences)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Get: %w", err)
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		s.log.WarnContext(ctx, "ignoring unreadable user preferences", "error", err)
		return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Get: %w", domain.ErrNotFound)
	}
	if prefs.VisitDate != nil {
		if _, err := domain.ParseDay(string(*prefs.VisitDate)); err != nil {
			prefs.VisitDate = nil
		}
	}
	return prefs, nil
}

// Put validates and stores prefs, replacing any previous value. The visit
// date is also written under its own key, in the same atomic write.
// Returns domain.ErrValidation for an unknown park style or a malformed date.
func (s *PreferenceService) Put(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	if !prefs.ParkStyle.Valid() {
		return domain.UserPreferences{}, fmt.Errorf("%w: unknown park style %q", domain.ErrValidation, prefs.ParkStyle)
	}
	if prefs.VisitDate != nil {
		if _, err := domain.ParseDay(prefs.VisitDate.String()); err != nil {
			return domain.UserPreferences{}, err
		}
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Put: marshal: %w", err)
	}
	values := map[string]json.RawMessage{repo.KeyUserPreferences: raw}
	if prefs.VisitDate != nil {
		date, err := json.Marshal(prefs.VisitDate.String())
		if err != nil {
			return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Put: marshal visit date: %w", err)
		}
		values[repo.KeyVisitDate] = date
	}

	if err := s.repo.PutAll(ctx, values); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Put: %w", err)
	}
	return prefs, nil
}
