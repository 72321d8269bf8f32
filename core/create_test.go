package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedService(store contract.Store, geo contract.Geocoder) *Service {
	svc := NewService(store, geo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC) }
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func serviceRequestInput() *schema.ServiceRequestInput {
	return &schema.ServiceRequestInput{
		Category:        "Street and Sidewalk Cleaning",
		ComplaintType:   "Garbage",
		Descriptor:      "Overflowing bin",
		IncidentAddress: "123 Main St",
		Neighborhood:    "Mission",
		ZipCode:         "94110",
	}
}

func TestCreateServiceRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults and stamps the creation time", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourceServiceRequests, "fixed-id").Return(false, nil)
		store.On("InsertServiceRequest", ctx, mock.Anything).Return(nil)

		svc := fixedService(store, nil)
		row, err := svc.CreateServiceRequest(ctx, serviceRequestInput())
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", row.UniqueKey)
		assert.Equal(t, "2024-06-01 12:30:45+00:00", row.CreatedDate)
		assert.Equal(t, "Open", row.Status)
		assert.Equal(t, "Web", row.Source)
		assert.Nil(t, row.Latitude)
		store.AssertExpectations(t)
	})

	t.Run("missing fields are reported in declaration order", func(t *testing.T) {
		svc := fixedService(&contract.MockStore{}, nil)

		in := serviceRequestInput()
		in.Category = ""
		in.Neighborhood = ""
		_, err := svc.CreateServiceRequest(ctx, in)
		require.Error(t, err)
		assert.True(t, contract.IsMissingField(err))
		assert.Equal(t, "Missing required field 'category'", err.Error())
	})

	t.Run("geocoder fills missing coordinates", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourceServiceRequests, "fixed-id").Return(false, nil)
		store.On("InsertServiceRequest", ctx, mock.Anything).Return(nil)

		lat, lon := 37.76, -122.42
		geo := &contract.MockGeocoder{}
		geo.On("Geocode", ctx, "123 Main St", "94110").Return(&lat, &lon, nil)

		svc := fixedService(store, geo)
		row, err := svc.CreateServiceRequest(ctx, serviceRequestInput())
		require.NoError(t, err)
		require.NotNil(t, row.Latitude)
		assert.InDelta(t, 37.76, *row.Latitude, 1e-9)
		require.NotNil(t, row.Longitude)
		assert.InDelta(t, -122.42, *row.Longitude, 1e-9)
		geo.AssertExpectations(t)
	})

	t.Run("explicit coordinates skip the geocoder", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourceServiceRequests, "fixed-id").Return(false, nil)
		store.On("InsertServiceRequest", ctx, mock.Anything).Return(nil)

		geo := &contract.MockGeocoder{}

		in := serviceRequestInput()
		in.Latitude = schema.FlexFloat{Value: 37.7, Valid: true}
		in.Longitude = schema.FlexFloat{Value: -122.4, Valid: true}

		svc := fixedService(store, geo)
		row, err := svc.CreateServiceRequest(ctx, in)
		require.NoError(t, err)
		assert.InDelta(t, 37.7, *row.Latitude, 1e-9)
		geo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("geocoder failure leaves coordinates null", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourceServiceRequests, "fixed-id").Return(false, nil)
		store.On("InsertServiceRequest", ctx, mock.Anything).Return(nil)

		geo := &contract.MockGeocoder{}
		geo.On("Geocode", ctx, "123 Main St", "94110").Return(nil, nil, errors.New("upstream down"))

		svc := fixedService(store, geo)
		row, err := svc.CreateServiceRequest(ctx, serviceRequestInput())
		require.NoError(t, err)
		assert.Nil(t, row.Latitude)
		assert.Nil(t, row.Longitude)
	})
}

func TestCreatePoliceIncident(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the timestamp, caller may override", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourcePoliceIncidents, "fixed-id").Return(false, nil)
		store.On("InsertPoliceIncident", ctx, mock.Anything).Return(nil)

		svc := fixedService(store, nil)
		in := &schema.PoliceIncidentInput{Category: "Assault", Descript: "Battery", Address: "456 Oak St"}
		row, err := svc.CreatePoliceIncident(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01 12:30:45+00:00", row.Timestamp)

		override := "2023-12-31 23:00:00"
		in.Timestamp = &override
		row, err = svc.CreatePoliceIncident(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, override, row.Timestamp)
	})

	t.Run("missing descript", func(t *testing.T) {
		svc := fixedService(&contract.MockStore{}, nil)
		_, err := svc.CreatePoliceIncident(ctx, &schema.PoliceIncidentInput{Category: "Assault", Address: "456 Oak St"})
		require.Error(t, err)
		assert.Equal(t, "Missing required field 'descript'", err.Error())
	})
}

func TestCreateFireIncident(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields use the dataset's spaced names", func(t *testing.T) {
		svc := fixedService(&contract.MockStore{}, nil)
		_, err := svc.CreateFireIncident(ctx, &schema.FireIncidentInput{Address: "789 Pine St"})
		require.Error(t, err)
		assert.Equal(t, "Missing required field 'Incident Date'", err.Error())
	})

	t.Run("identifier becomes the incident number", func(t *testing.T) {
		store := &contract.MockStore{}
		store.On("IdentifierExists", ctx, schema.SourceFireIncidents, "fixed-id").Return(false, nil)
		store.On("InsertFireIncident", ctx, mock.Anything).Return(nil)

		svc := fixedService(store, nil)
		row, err := svc.CreateFireIncident(ctx, &schema.FireIncidentInput{
			Address:              "789 Pine St",
			IncidentDate:         "2024-05-01",
			PrimarySituation:     "Building fire",
			AnalysisNeighborhood: "Sunset",
		})
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", row.IncidentNumber)
	})
}

func TestNewIdentifierExhaustion(t *testing.T) {
	ctx := context.Background()

	store := &contract.MockStore{}
	store.On("IdentifierExists", ctx, schema.SourcePoliceIncidents, mock.Anything).Return(true, nil)

	svc := fixedService(store, nil)
	_, err := svc.CreatePoliceIncident(ctx, &schema.PoliceIncidentInput{
		Category: "Assault", Descript: "Battery", Address: "456 Oak St",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrIdentifierExhausted)
	store.AssertNumberOfCalls(t, "IdentifierExists", 10)
	store.AssertNotCalled(t, "InsertPoliceIncident", mock.Anything, mock.Anything)
}
