package core

import (
	"context"
	"testing"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCrimeCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks by frequency with stable ties", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("CrimeCategories", ctx).Return(
			[]string{"Larceny", "Assault", "Larceny", "Burglary", "Assault", "Larceny"}, nil)

		svc := NewService(store, nil)
		got, err := svc.TopCrimeCategories(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []schema.CategoryCount{
			{Category: "Larceny", Count: 3},
			{Category: "Assault", Count: 2},
			{Category: "Burglary", Count: 1},
		}, got)
	})

	t.Run("limit caps the ranking", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("CrimeCategories", ctx).Return([]string{"Larceny", "Assault", "Larceny"}, nil)

		svc := NewService(store, nil)
		got, err := svc.TopCrimeCategories(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Larceny", got[0].Category)
	})

	t.Run("limit bounds", func(t *testing.T) {
		svc := NewService(&contract.MockStore{}, nil)
		for _, limit := range []int{0, -1, 101} {
			_, err := svc.TopCrimeCategories(ctx, limit)
			require.Error(t, err, "limit %d", limit)
			assert.True(t, contract.IsInvalidParameter(err))
		}
	})
}

func TestIncompleteInspectionsValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the limit through to the store", func(t *testing.T) {
		store := &contract.MockStore{}
		records := []schema.InspectionRecord{{InspectionNumber: "insp-1"}}
		store.On("IncompleteInspections", ctx, 25).Return(records, nil)

		svc := NewService(store, nil)
		got, err := svc.IncompleteInspections(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, records, got)
		store.AssertExpectations(t)
	})

	t.Run("rejects out-of-range limits", func(t *testing.T) {
		svc := NewService(&contract.MockStore{}, nil)
		_, err := svc.IncompleteInspections(ctx, 0)
		require.Error(t, err)
		assert.True(t, contract.IsInvalidParameter(err))
	})
}
