package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// Timeline returns the unified incident stream, optionally filtered to a
// single source, ordered newest first (coordinates-first when requested for
// map rendering), and truncated to limit when limit is positive.
func (s *Service) Timeline(ctx context.Context, source string, limit int, prioritizeCoords bool) (*schema.TimelineResult, error) {
	opts := contract.TimelineOptions{
		Limit:                 limit,
		PrioritizeCoordinates: prioritizeCoords,
	}
	if source != "" {
		tbl := schema.SourceTable(source)
		if _, ok := schema.ValidSourceTables[tbl]; !ok {
			return nil, contract.NewInvalidParameter("Invalid source table")
		}
		opts.Source = &tbl
	}

	rows, err := s.store.UnifiedIncidents(ctx, opts)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []schema.CanonicalIncident{}
	}

	return &schema.TimelineResult{
		Data:    rows,
		Count:   len(rows),
		Sources: SourceCounts(rows),
	}, nil
}

// SourceCounts tallies returned rows per source table. The counts reflect
// rows returned after limiting, not rows matched.
func SourceCounts(rows []schema.CanonicalIncident) map[schema.SourceTable]int {
	counts := make(map[schema.SourceTable]int)
	for _, r := range rows {
		counts[r.SourceTable]++
	}
	return counts
}
