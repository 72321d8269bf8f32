package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/schema"
)

// TypeBreakdown reports the crime and fire totals with each family's
// percentage of the combined count. A family with zero rows is omitted.
func (s *Service) TypeBreakdown(ctx context.Context) (*schema.TypeBreakdown, error) {
	crime, err := s.store.CrimeCount(ctx)
	if err != nil {
		return nil, err
	}
	fire, err := s.store.FireCount(ctx)
	if err != nil {
		return nil, err
	}

	total := crime + fire
	breakdown := &schema.TypeBreakdown{TotalIncidents: total}
	if crime > 0 {
		breakdown.Crime = &schema.TypeShare{
			Total:      crime,
			Percentage: schema.Round2(float64(crime) / float64(total) * 100),
		}
	}
	if fire > 0 {
		breakdown.Fire = &schema.TypeShare{
			Total:      fire,
			Percentage: schema.Round2(float64(fire) / float64(total) * 100),
		}
	}
	return breakdown, nil
}

// MonthlyIncidents aggregates crime and fire counts per YYYY-MM bucket.
// Police incidents are counted as distinct unique keys within a month;
// fire incidents are counted per row. Months present in either family
// appear in the result, zero-filled for the other.
func (s *Service) MonthlyIncidents(ctx context.Context) (map[string]schema.MonthlyBucket, error) {
	crimes, err := s.store.CrimeIncidentTimes(ctx)
	if err != nil {
		return nil, err
	}
	fires, err := s.store.FireIncidentDates(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateMonthly(crimes, fires), nil
}

// AggregateMonthly buckets both incident families by month. Rows with
// unparsable timestamps are excluded.
func AggregateMonthly(crimes []schema.KeyedTime, fires []string) map[string]schema.MonthlyBucket {
	crimeKeys := make(map[string]map[string]struct{})
	for _, c := range crimes {
		month, err := monthKey(c.Timestamp)
		if err != nil {
			continue
		}
		if crimeKeys[month] == nil {
			crimeKeys[month] = make(map[string]struct{})
		}
		crimeKeys[month][c.UniqueKey] = struct{}{}
	}

	fireCounts := make(map[string]int)
	for _, raw := range fires {
		month, err := monthKey(raw)
		if err != nil {
			continue
		}
		fireCounts[month]++
	}

	result := make(map[string]schema.MonthlyBucket)
	for month, keys := range crimeKeys {
		b := result[month]
		b.CrimeCnt = len(keys)
		result[month] = b
	}
	for month, cnt := range fireCounts {
		b := result[month]
		b.FireCnt = cnt
		result[month] = b
	}
	for month, b := range result {
		b.TotalIncidents = b.CrimeCnt + b.FireCnt
		result[month] = b
	}
	return result
}
