package core

import (
	"context"
	"sort"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// minCallsPerType is the HAVING threshold: call types with fewer matched
// calls are not statistically interesting and are dropped.
const minCallsPerType = 5

// ResponseTimes computes per-call-type response statistics (minutes from
// received to on-scene), ranked by the caller-selected field and direction.
func (s *Service) ResponseTimes(ctx context.Context, limit int, sortBy, order string) ([]schema.ResponseTimeStat, error) {
	if limit < 1 || limit > contract.MaxRangedLimit {
		return nil, contract.NewInvalidParameter("Invalid 'limit' parameter. Must be between 1 and 100.")
	}
	field := schema.SortField(sortBy)
	if _, ok := schema.ValidSortFields[field]; !ok {
		return nil, contract.NewInvalidParameter(
			"Invalid 'sort_by' parameter. Must be either of these options: ['avg_response', 'min_response', 'max_response'].")
	}
	direction := schema.SortOrder(order)
	if _, ok := schema.ValidSortOrders[direction]; !ok {
		return nil, contract.NewInvalidParameter(
			"Invalid 'order' parameter. Must be either of these options: ['ASC', 'DESC'].")
	}

	records, err := s.store.ResponseRecords(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateResponseTimes(records, field, direction, limit), nil
}

// AggregateResponseTimes computes elapsed minutes for every record whose
// on-scene time is at or after its received time, groups by call type,
// drops groups below the minimum call count, and ranks by the selected
// measure. Records with unparsable timestamps are excluded.
func AggregateResponseTimes(records []schema.ResponseRecord, sortBy schema.SortField, order schema.SortOrder, limit int) []schema.ResponseTimeStat {
	type group struct {
		count    int
		sum      float64
		min, max float64
	}
	groups := make(map[string]*group)

	for _, r := range records {
		received, err := ParseIncidentTime(r.Received)
		if err != nil {
			continue
		}
		onScene, err := ParseIncidentTime(r.OnScene)
		if err != nil {
			continue
		}
		if onScene.Before(received) {
			continue
		}
		minutes := onScene.Sub(received).Minutes()

		g := groups[r.CallType]
		if g == nil {
			g = &group{min: minutes, max: minutes}
			groups[r.CallType] = g
		}
		g.count++
		g.sum += minutes
		if minutes < g.min {
			g.min = minutes
		}
		if minutes > g.max {
			g.max = minutes
		}
	}

	stats := make([]schema.ResponseTimeStat, 0, len(groups))
	for callType, g := range groups {
		if g.count < minCallsPerType {
			continue
		}
		stats = append(stats, schema.ResponseTimeStat{
			CallType:           callType,
			TotalCalls:         g.count,
			AvgResponseMinutes: schema.Round2(g.sum / float64(g.count)),
			MinResponseMinutes: schema.Round2(g.min),
			MaxResponseMinutes: schema.Round2(g.max),
		})
	}

	measure := func(st schema.ResponseTimeStat) float64 {
		switch sortBy {
		case schema.SortMinResponse:
			return st.MinResponseMinutes
		case schema.SortMaxResponse:
			return st.MaxResponseMinutes
		default:
			return st.AvgResponseMinutes
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		mi, mj := measure(stats[i]), measure(stats[j])
		if mi != mj {
			if order == schema.OrderAsc {
				return mi < mj
			}
			return mi > mj
		}
		return stats[i].CallType < stats[j].CallType
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	for i := range stats {
		stats[i].Rank = i + 1
	}
	return stats
}
