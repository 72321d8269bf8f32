package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/core/algo"
	"github.com/bayviewlabs/safetylens/schema"
)

// topSituations bounds the situation ranking to the most frequent ten.
const topSituations = 10

// FireSituationActions reports, for each of the ten most frequent fire
// primary situations, its single most frequent primary response action,
// ordered by the situation's overall frequency descending.
func (s *Service) FireSituationActions(ctx context.Context) ([]schema.SituationAction, error) {
	pairs, err := s.store.FireSituationActions(ctx)
	if err != nil {
		return nil, err
	}
	return TopSituationActions(pairs), nil
}

// TopSituationActions picks the rank-1 action per top-10 situation. Ties
// on action frequency break on the action value ascending, keeping the
// pick stable across runs.
func TopSituationActions(pairs []schema.SituationAction) []schema.SituationAction {
	situations := make([]string, len(pairs))
	actionsBySituation := make(map[string][]string)
	for i, p := range pairs {
		situations[i] = p.Situation
		actionsBySituation[p.Situation] = append(actionsBySituation[p.Situation], p.Action)
	}

	top := algo.TopN(algo.CountValues(situations), topSituations)

	result := make([]schema.SituationAction, 0, len(top))
	for _, s := range top {
		actions := algo.CountValues(actionsBySituation[s.Key])
		if len(actions) == 0 {
			continue
		}
		result = append(result, schema.SituationAction{
			Situation: s.Key,
			Action:    actions[0].Key,
		})
	}
	return result
}
