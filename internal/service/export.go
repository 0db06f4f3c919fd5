package service

import (
	"context"
	"fmt"

	"github.com/magicjourney/backend/internal/domain"
	"github.com/magicjourney/backend/internal/repo"
)

// ExportService assembles a flat export of every planned activity.
// It reads storage directly, so it sees exactly what has been persisted.
type ExportService struct {
	plans repo.PlanRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(plans repo.PlanRepo) *ExportService {
	return &ExportService{plans: plans}
}

// Export returns one ExportRow per activity, ordered by day then position.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	activities, err := s.plans.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return domain.ExportRows(activities), nil
}
