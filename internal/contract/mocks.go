package contract

import (
	"context"

	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

var _ Store = &MockStore{} // Compile-time check

// UnifiedIncidents implements the Store interface.
func (m *MockStore) UnifiedIncidents(ctx context.Context, opts TimelineOptions) ([]schema.CanonicalIncident, error) {
	args := m.Called(ctx, opts)
	rows, _ := args.Get(0).([]schema.CanonicalIncident)
	return rows, args.Error(1)
}

// NeighborhoodRows implements the Store interface.
func (m *MockStore) NeighborhoodRows(ctx context.Context) ([]schema.NeighborhoodRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.NeighborhoodRow)
	return rows, args.Error(1)
}

// TemporalRows implements the Store interface.
func (m *MockStore) TemporalRows(ctx context.Context) ([]schema.TemporalRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.TemporalRow)
	return rows, args.Error(1)
}

// CrimeCount implements the Store interface.
func (m *MockStore) CrimeCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// FireCount implements the Store interface.
func (m *MockStore) FireCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// CrimeIncidentTimes implements the Store interface.
func (m *MockStore) CrimeIncidentTimes(ctx context.Context) ([]schema.KeyedTime, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.KeyedTime)
	return rows, args.Error(1)
}

// FireIncidentDates implements the Store interface.
func (m *MockStore) FireIncidentDates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]string)
	return rows, args.Error(1)
}

// CrimeCategories implements the Store interface.
func (m *MockStore) CrimeCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]string)
	return rows, args.Error(1)
}

// FireSituationActions implements the Store interface.
func (m *MockStore) FireSituationActions(ctx context.Context) ([]schema.SituationAction, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.SituationAction)
	return rows, args.Error(1)
}

// FireYearRows implements the Store interface.
func (m *MockStore) FireYearRows(ctx context.Context) ([]schema.YearRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.YearRow)
	return rows, args.Error(1)
}

// ResponseRecords implements the Store interface.
func (m *MockStore) ResponseRecords(ctx context.Context) ([]schema.ResponseRecord, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.ResponseRecord)
	return rows, args.Error(1)
}

// IncompleteInspections implements the Store interface.
func (m *MockStore) IncompleteInspections(ctx context.Context, limit int) ([]schema.InspectionRecord, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]schema.InspectionRecord)
	return rows, args.Error(1)
}

// IdentifierExists implements the Store interface.
func (m *MockStore) IdentifierExists(ctx context.Context, table schema.SourceTable, id string) (bool, error) {
	args := m.Called(ctx, table, id)
	return args.Bool(0), args.Error(1)
}

// InsertServiceRequest implements the Store interface.
func (m *MockStore) InsertServiceRequest(ctx context.Context, row *schema.ServiceRequestRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// InsertPoliceIncident implements the Store interface.
func (m *MockStore) InsertPoliceIncident(ctx context.Context, row *schema.PoliceIncidentRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// InsertFireIncident implements the Store interface.
func (m *MockStore) InsertFireIncident(ctx context.Context, row *schema.FireIncidentRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockGeocoder is a mock implementation of Geocoder for testing.
type MockGeocoder struct {
	mock.Mock
}

var _ Geocoder = &MockGeocoder{} // Compile-time check

// Geocode implements the Geocoder interface.
func (m *MockGeocoder) Geocode(ctx context.Context, address, zipCode string) (*float64, *float64, error) {
	args := m.Called(ctx, address, zipCode)
	lat, _ := args.Get(0).(*float64)
	lon, _ := args.Get(1).(*float64)
	return lat, lon, args.Error(2)
}
