package core

import (
	"context"
	"sort"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// TopFireNeighborhoods ranks, for each of the most recent `years` years,
// the top `limit` neighborhoods by fire incident count. An empty result is
// a valid no-data outcome, signalled by an empty slice and a nil summary.
func (s *Service) TopFireNeighborhoods(ctx context.Context, limit, years int) ([]schema.YearNeighborhood, *schema.YearlySummary, error) {
	if limit < 1 || limit > contract.MaxRangedLimit {
		return nil, nil, contract.NewInvalidParameter("Invalid 'limit' parameter. Must be between 1 and 100.")
	}
	if years < 1 || years > contract.MaxYearWindow {
		return nil, nil, contract.NewInvalidParameter("Invalid 'year' parameter. Must be between 1 and 5.")
	}

	rows, err := s.store.FireYearRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	ranked := AggregateFireYears(rows, limit, years)
	if len(ranked) == 0 {
		return nil, nil, nil
	}

	summary := &schema.YearlySummary{
		YearsAnalyzed:  yearsAnalyzed(ranked),
		LimitPerYear:   limit,
		YearsRequested: years,
		TotalRecords:   len(ranked),
	}
	return ranked, summary, nil
}

// AggregateFireYears groups fire incidents by (year, neighborhood), ranks
// neighborhoods within each year partition by count descending, keeps
// ranks <= limit within the most recent `years` year window, and orders
// the result by year descending then rank ascending.
//
// The percentage is each group's share of ALL rows with a non-empty
// neighborhood, not of the year's subset. The field name oversells it, but
// the share is observable output and is preserved as-is.
func AggregateFireYears(rows []schema.YearRow, limit, years int) []schema.YearNeighborhood {
	// Denominator: every row with a neighborhood, parsable date or not.
	totalRows := len(rows)

	type key struct {
		year         int
		neighborhood string
	}
	counts := make(map[key]int)
	maxYear := 0
	for _, r := range rows {
		year, err := yearOf(r.IncidentTime)
		if err != nil {
			continue
		}
		counts[key{year, r.Neighborhood}]++
		if year > maxYear {
			maxYear = year
		}
	}
	if len(counts) == 0 {
		return nil
	}

	grouped := make([]schema.YearNeighborhood, 0, len(counts))
	for k, c := range counts {
		grouped = append(grouped, schema.YearNeighborhood{
			Year:              k.year,
			Neighborhood:      k.neighborhood,
			TotalFires:        c,
			PercentageOfTotal: schema.Round2(float64(c) * 100 / float64(totalRows)),
		})
	}

	// Partition rank: count descending within each year, name ascending on
	// ties so the row-number assignment is stable.
	sort.SliceStable(grouped, func(i, j int) bool {
		if grouped[i].Year != grouped[j].Year {
			return grouped[i].Year > grouped[j].Year
		}
		if grouped[i].TotalFires != grouped[j].TotalFires {
			return grouped[i].TotalFires > grouped[j].TotalFires
		}
		return grouped[i].Neighborhood < grouped[j].Neighborhood
	})

	minYear := maxYear - (years - 1)
	var result []schema.YearNeighborhood
	rank, currentYear := 0, -1
	for _, g := range grouped {
		if g.Year < minYear {
			continue
		}
		if g.Year != currentYear {
			currentYear = g.Year
			rank = 0
		}
		rank++
		if rank > limit {
			continue
		}
		g.Rank = rank
		result = append(result, g)
	}
	return result
}

// yearsAnalyzed returns the ascending inclusive range between the last and
// first returned years (the result is ordered year-descending).
func yearsAnalyzed(ranked []schema.YearNeighborhood) []int {
	first := ranked[0].Year
	last := ranked[len(ranked)-1].Year
	years := make([]int, 0, first-last+1)
	for y := last; y <= first; y++ {
		years = append(years, y)
	}
	return years
}
