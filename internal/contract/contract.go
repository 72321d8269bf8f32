// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/bayviewlabs/safetylens/schema"
)

// TimelineOptions carries pre-validated options for the unified view.
// Source is nil for "all sources"; Limit zero means no cap.
type TimelineOptions struct {
	Source                *schema.SourceTable
	Limit                 int
	PrioritizeCoordinates bool
}

// Store defines the persistence operations the aggregation engine needs.
// Implementations project the six heterogeneous source tables onto the
// canonical row shapes in schema; all grouping, classification and ranking
// happens above this interface so it can be mocked for testing.
type Store interface {
	// --- Unified view projections ---

	// UnifiedIncidents returns the logical union of all six sources,
	// excluding rows with a null canonical time, ordered and truncated per
	// opts.
	UnifiedIncidents(ctx context.Context, opts TimelineOptions) ([]schema.CanonicalIncident, error)

	// NeighborhoodRows returns rows with a non-empty neighborhood across
	// all sources (no time requirement).
	NeighborhoodRows(ctx context.Context) ([]schema.NeighborhoodRow, error)

	// TemporalRows returns rows with both a non-null time and a non-empty
	// neighborhood across all sources.
	TemporalRows(ctx context.Context) ([]schema.TemporalRow, error)

	// --- Single-source projections ---

	// CrimeCount counts police incidents with a non-null timestamp.
	CrimeCount(ctx context.Context) (int, error)

	// FireCount counts fire incidents with a non-null incident date.
	FireCount(ctx context.Context) (int, error)

	// CrimeIncidentTimes returns (unique_key, timestamp) for all police
	// incidents with a non-null timestamp.
	CrimeIncidentTimes(ctx context.Context) ([]schema.KeyedTime, error)

	// FireIncidentDates returns the non-null incident dates of all fire
	// incidents.
	FireIncidentDates(ctx context.Context) ([]string, error)

	// CrimeCategories returns the category value of every police incident.
	CrimeCategories(ctx context.Context) ([]string, error)

	// FireSituationActions returns (primary situation, primary action)
	// for every fire incident.
	FireSituationActions(ctx context.Context) ([]schema.SituationAction, error)

	// FireYearRows returns (neighborhood, incident date) for fire
	// incidents with a non-empty neighborhood.
	FireYearRows(ctx context.Context) ([]schema.YearRow, error)

	// ResponseRecords returns dispatch calls with a non-empty call type
	// and both received and on-scene timestamps present.
	ResponseRecords(ctx context.Context) ([]schema.ResponseRecord, error)

	// IncompleteInspections lists fire inspections without an end date,
	// most recent start date first, capped at limit.
	IncompleteInspections(ctx context.Context, limit int) ([]schema.InspectionRecord, error)

	// --- Write path ---

	// IdentifierExists reports whether id is already used as the primary
	// identifier of the given source table.
	IdentifierExists(ctx context.Context, table schema.SourceTable, id string) (bool, error)

	// InsertServiceRequest appends a fully-populated 311 row.
	InsertServiceRequest(ctx context.Context, row *schema.ServiceRequestRow) error

	// InsertPoliceIncident appends a fully-populated police incident row.
	InsertPoliceIncident(ctx context.Context, row *schema.PoliceIncidentRow) error

	// InsertFireIncident appends a fully-populated fire incident row.
	InsertFireIncident(ctx context.Context, row *schema.FireIncidentRow) error

	// Close releases the underlying connection pool.
	Close() error
}

// Geocoder resolves a street address to coordinates. Implementations must
// return (nil, nil, nil) when the address has no match; only transport
// failures are errors.
type Geocoder interface {
	Geocode(ctx context.Context, address, zipCode string) (lat, lon *float64, err error)
}
