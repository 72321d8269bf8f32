package core

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// DangerFilter holds optional equality filters for the danger analysis.
// Empty values mean "no filter".
type DangerFilter struct {
	Neighborhood string
	TimePeriod   schema.TimePeriod
	DayType      schema.DayType
}

// DangerAnalysis groups the temporally-classified stream by (neighborhood,
// time period, day type) and reports each group's share of its
// neighborhood's incidents. Filters are validated against their enums;
// topN caps the global result, with a non-positive value meaning no cap.
func (s *Service) DangerAnalysis(ctx context.Context, neighborhood, timePeriod, dayType string, topN int) (*schema.DangerResult, error) {
	filter := DangerFilter{Neighborhood: neighborhood}

	if timePeriod != "" {
		tp := schema.TimePeriod(timePeriod)
		if _, ok := schema.ValidTimePeriods[tp]; !ok {
			return nil, contract.NewInvalidParameter(
				"Invalid time_period. Must be one of: %s", joinPeriods())
		}
		filter.TimePeriod = tp
	}
	if dayType != "" {
		dt := schema.DayType(dayType)
		if _, ok := schema.ValidDayTypes[dt]; !ok {
			return nil, contract.NewInvalidParameter(
				"Invalid day_type. Must be one of: %s, %s", schema.DayWeekday, schema.DayWeekend)
		}
		filter.DayType = dt
	}

	rows, err := s.store.TemporalRows(ctx)
	if err != nil {
		return nil, err
	}

	buckets := AggregateDanger(rows, filter, topN)
	return &schema.DangerResult{
		Data:         buckets,
		Summary:      summarizeDanger(buckets),
		TotalRecords: len(buckets),
	}, nil
}

// AggregateDanger classifies rows, applies the dimension filters, groups by
// the (neighborhood, period, day type) tuple and computes each group's
// percentage of its neighborhood partition. Rows whose timestamp cannot be
// parsed are excluded. Groups are ordered by count descending and capped
// at topN.
func AggregateDanger(rows []schema.TemporalRow, filter DangerFilter, topN int) []schema.DangerBucket {
	type key struct {
		neighborhood string
		period       schema.TimePeriod
		dayType      schema.DayType
	}
	type group struct {
		count int
		types map[string]struct{}
	}
	groups := make(map[key]*group)

	for _, r := range rows {
		period, dayType, err := Classify(r.IncidentTime)
		if errors.Is(err, contract.ErrMalformedTimestamp) {
			continue
		}
		if filter.Neighborhood != "" && r.Neighborhood != filter.Neighborhood {
			continue
		}
		if filter.TimePeriod != "" && period != filter.TimePeriod {
			continue
		}
		if filter.DayType != "" && dayType != filter.DayType {
			continue
		}

		k := key{neighborhood: r.Neighborhood, period: period, dayType: dayType}
		g := groups[k]
		if g == nil {
			g = &group{types: make(map[string]struct{})}
			groups[k] = g
		}
		g.count++
		if r.IncidentType != nil {
			g.types[*r.IncidentType] = struct{}{}
		}
	}

	// Partition totals run over the filtered groups, so the shares of the
	// groups present in the output sum to 100 within each neighborhood.
	partitionTotals := make(map[string]int)
	for k, g := range groups {
		partitionTotals[k.neighborhood] += g.count
	}

	buckets := make([]schema.DangerBucket, 0, len(groups))
	for k, g := range groups {
		buckets = append(buckets, schema.DangerBucket{
			Neighborhood:      k.neighborhood,
			TimePeriod:        k.period,
			DayType:           k.dayType,
			IncidentCount:     g.count,
			IncidentTypes:     len(g.types),
			PctOfNeighborhood: schema.Round2(float64(g.count) * 100 / float64(partitionTotals[k.neighborhood])),
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].IncidentCount != buckets[j].IncidentCount {
			return buckets[i].IncidentCount > buckets[j].IncidentCount
		}
		if buckets[i].Neighborhood != buckets[j].Neighborhood {
			return buckets[i].Neighborhood < buckets[j].Neighborhood
		}
		if buckets[i].TimePeriod != buckets[j].TimePeriod {
			return buckets[i].TimePeriod < buckets[j].TimePeriod
		}
		return buckets[i].DayType < buckets[j].DayType
	})

	if topN > 0 && len(buckets) > topN {
		buckets = buckets[:topN]
	}
	return buckets
}

// summarizeDanger totals the returned buckets by each secondary dimension.
// The "top dangerous" list is the first five rows of the already-capped,
// count-descending result, not an independent re-ranking.
func summarizeDanger(buckets []schema.DangerBucket) schema.DangerSummary {
	summary := schema.DangerSummary{
		ByTimePeriod: make(map[schema.TimePeriod]int),
		ByDayType:    make(map[schema.DayType]int),
	}
	for _, b := range buckets {
		summary.ByTimePeriod[b.TimePeriod] += b.IncidentCount
		summary.ByDayType[b.DayType] += b.IncidentCount
	}
	top := min(5, len(buckets))
	summary.TopDangerousCombinations = buckets[:top]
	return summary
}

func joinPeriods() string {
	names := []string{
		string(schema.PeriodMorning),
		string(schema.PeriodAfternoon),
		string(schema.PeriodEvening),
		string(schema.PeriodNight),
	}
	return strings.Join(names, ", ")
}
