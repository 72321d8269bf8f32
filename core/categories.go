package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/core/algo"
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// TopCrimeCategories ranks police incident categories by frequency.
func (s *Service) TopCrimeCategories(ctx context.Context, limit int) ([]schema.CategoryCount, error) {
	if limit < 1 || limit > contract.MaxRangedLimit {
		return nil, contract.NewInvalidParameter("Invalid 'limit' parameter. Must be between 1 and 100.")
	}

	values, err := s.store.CrimeCategories(ctx)
	if err != nil {
		return nil, err
	}

	ranked := algo.TopN(algo.CountValues(values), limit)
	result := make([]schema.CategoryCount, len(ranked))
	for i, c := range ranked {
		result[i] = schema.CategoryCount{Category: c.Key, Count: c.Count}
	}
	return result, nil
}
