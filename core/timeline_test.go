package core

import (
	"context"
	"testing"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("counts returned rows per source", func(t *testing.T) {
		store := &contract.MockStore{}
		rows := []schema.CanonicalIncident{
			{SourceTable: schema.SourceFireIncidents},
			{SourceTable: schema.SourceFireIncidents},
			{SourceTable: schema.SourcePoliceIncidents},
		}
		store.On("UnifiedIncidents", ctx, contract.TimelineOptions{Limit: 10}).Return(rows, nil)

		svc := NewService(store, nil)
		result, err := svc.Timeline(ctx, "", 10, false)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.Equal(t, 2, result.Sources[schema.SourceFireIncidents])
		assert.Equal(t, 1, result.Sources[schema.SourcePoliceIncidents])
		store.AssertExpectations(t)
	})

	t.Run("source filter is validated before the store is hit", func(t *testing.T) {
		store := &contract.MockStore{}
		svc := NewService(store, nil)

		_, err := svc.Timeline(ctx, "not_a_table", 0, false)
		require.Error(t, err)
		assert.True(t, contract.IsInvalidParameter(err))
		store.AssertNotCalled(t, "UnifiedIncidents", mock.Anything, mock.Anything)
	})

	t.Run("valid source is passed through as a filter", func(t *testing.T) {
		store := &contract.MockStore{}
		tbl := schema.SourceFireIncidents
		store.On("UnifiedIncidents", ctx, contract.TimelineOptions{Source: &tbl}).
			Return([]schema.CanonicalIncident{}, nil)

		svc := NewService(store, nil)
		_, err := svc.Timeline(ctx, string(tbl), 0, false)
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("empty store result yields an empty slice, not nil", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("UnifiedIncidents", ctx, contract.TimelineOptions{}).
			Return(nil, nil)

		svc := NewService(store, nil)
		result, err := svc.Timeline(ctx, "", 0, false)
		require.NoError(t, err)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
	})
}
