package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// IncompleteInspections lists fire inspections without an end date, most
// recent start date first. Pure pass-through beyond limit validation.
func (s *Service) IncompleteInspections(ctx context.Context, limit int) ([]schema.InspectionRecord, error) {
	if limit < 1 || limit > contract.MaxRangedLimit {
		return nil, contract.NewInvalidParameter("Invalid 'limit' parameter. Must be between 1 and 100.")
	}
	return s.store.IncompleteInspections(ctx, limit)
}
