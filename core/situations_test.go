package core

import (
	"fmt"
	"testing"

	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(situation, action string) schema.SituationAction {
	return schema.SituationAction{Situation: situation, Action: action}
}

func TestTopSituationActions(t *testing.T) {
	t.Run("picks the most frequent action per situation", func(t *testing.T) {
		pairs := []schema.SituationAction{
			pair("Building fire", "Extinguishment"),
			pair("Building fire", "Extinguishment"),
			pair("Building fire", "Investigate"),
			pair("Alarm system activation", "Investigate"),
		}
		got := TopSituationActions(pairs)
		require.Len(t, got, 2)

		// Situations rank by overall frequency.
		assert.Equal(t, "Building fire", got[0].Situation)
		assert.Equal(t, "Extinguishment", got[0].Action)
		assert.Equal(t, "Alarm system activation", got[1].Situation)
		assert.Equal(t, "Investigate", got[1].Action)
	})

	t.Run("action ties break on the value", func(t *testing.T) {
		pairs := []schema.SituationAction{
			pair("Building fire", "Ventilate"),
			pair("Building fire", "Extinguishment"),
		}
		got := TopSituationActions(pairs)
		require.Len(t, got, 1)
		assert.Equal(t, "Extinguishment", got[0].Action)
	})

	t.Run("keeps only the ten most frequent situations", func(t *testing.T) {
		var pairs []schema.SituationAction
		for i := range 12 {
			// Situation i appears i+1 times, so 00 and 01 are the rarest.
			for range i + 1 {
				pairs = append(pairs, pair(fmt.Sprintf("Situation %02d", i), "Investigate"))
			}
		}
		got := TopSituationActions(pairs)
		require.Len(t, got, 10)
		for _, g := range got {
			assert.NotEqual(t, "Situation 00", g.Situation)
			assert.NotEqual(t, "Situation 01", g.Situation)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopSituationActions(nil))
	})
}
