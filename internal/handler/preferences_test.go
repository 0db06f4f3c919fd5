package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicjourney/backend/internal/domain"
)

func TestGetPreferences_404_NotSet(t *testing.T) {
	svc := &mockPreferenceServicer{
		get: func(_ context.Context) (domain.UserPreferences, error) {
			return domain.UserPreferences{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	rec := httptest.NewRecorder()
	routes(withPreferences(svc)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "preferences not set", decodeError(t, rec).Error.Message)
}

func TestGetPreferences_200(t *testing.T) {
	visit := domain.Day("2025-03-05")
	svc := &mockPreferenceServicer{
		get: func(_ context.Context) (domain.UserPreferences, error) {
			return domain.UserPreferences{VisitedBefore: true, ParkStyle: domain.StyleRelaxed, VisitDate: &visit}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	rec := httptest.NewRecorder()
	routes(withPreferences(svc)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"visited_disney":true,"park_style":"relaxed","visit_date":"2025-03-05"}`, rec.Body.String())
}

func TestPutPreferences_MapsBodyToDomain(t *testing.T) {
	var got domain.UserPreferences
	svc := &mockPreferenceServicer{
		put: func(_ context.Context, p domain.UserPreferences) (domain.UserPreferences, error) {
			got = p
			return p, nil
		},
	}

	body := jsonBody(t, map[string]any{"visited_disney": false, "park_style": "intensive", "visit_date": "2025-03-07"})
	req := httptest.NewRequest(http.MethodPut, "/preferences", body)
	rec := httptest.NewRecorder()
	routes(withPreferences(svc)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StyleIntensive, got.ParkStyle)
	require.NotNil(t, got.VisitDate)
	assert.Equal(t, domain.Day("2025-03-07"), *got.VisitDate)
	assert.JSONEq(t, `{"visited_disney":false,"park_style":"intensive","visit_date":"2025-03-07"}`, rec.Body.String())
}

func TestPutPreferences_422_InvalidStyle(t *testing.T) {
	svc := &mockPreferenceServicer{
		put: func(_ context.Context, _ domain.UserPreferences) (domain.UserPreferences, error) {
			return domain.UserPreferences{}, fmt.Errorf("service.PreferenceService.Put: %w: unknown park style \"turbo\"", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/preferences", jsonBody(t, map[string]any{"park_style": "turbo"}))
	rec := httptest.NewRecorder()
	routes(withPreferences(svc)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}
