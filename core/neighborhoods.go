package core

import (
	"context"
	"sort"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// TopNeighborhoods ranks neighborhoods by total incident count across all
// sources. minIncidents, when set, drops groups below the threshold after
// aggregation. The limit must be a positive integer.
func (s *Service) TopNeighborhoods(ctx context.Context, limit int, minIncidents *int) (*schema.TopNeighborhoodsResult, error) {
	if limit <= 0 {
		return nil, contract.NewInvalidParameter("Invalid limit parameter. Must be positive integer.")
	}

	rows, err := s.store.NeighborhoodRows(ctx)
	if err != nil {
		return nil, err
	}

	totals := AggregateNeighborhoods(rows, limit, minIncidents)

	counts := make([]int, len(totals))
	for i, t := range totals {
		counts[i] = t.IncidentCount
	}

	return &schema.TopNeighborhoodsResult{
		Data:               totals,
		TotalNeighborhoods: len(totals),
		Summary:            schema.SummarizeCounts(counts),
	}, nil
}

// AggregateNeighborhoods groups rows by neighborhood, counting rows,
// distinct source tables and distinct incident types, then orders groups
// by count descending and applies the threshold and cap.
func AggregateNeighborhoods(rows []schema.NeighborhoodRow, limit int, minIncidents *int) []schema.NeighborhoodTotal {
	type group struct {
		count   int
		sources map[schema.SourceTable]struct{}
		types   map[string]struct{}
	}
	groups := make(map[string]*group)

	for _, r := range rows {
		g := groups[r.Neighborhood]
		if g == nil {
			g = &group{
				sources: make(map[schema.SourceTable]struct{}),
				types:   make(map[string]struct{}),
			}
			groups[r.Neighborhood] = g
		}
		g.count++
		g.sources[r.SourceTable] = struct{}{}
		if r.IncidentType != nil {
			g.types[*r.IncidentType] = struct{}{}
		}
	}

	totals := make([]schema.NeighborhoodTotal, 0, len(groups))
	for name, g := range groups {
		if minIncidents != nil && g.count < *minIncidents {
			continue
		}
		totals = append(totals, schema.NeighborhoodTotal{
			Neighborhood:  name,
			IncidentCount: g.count,
			DataSources:   len(g.sources),
			IncidentTypes: len(g.types),
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].IncidentCount != totals[j].IncidentCount {
			return totals[i].IncidentCount > totals[j].IncidentCount
		}
		return totals[i].Neighborhood < totals[j].Neighborhood
	})

	if len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}
