package safetystore

import (
	"context"
	"fmt"
	"strings"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// UnifiedIncidents returns the logical union of all six source tables as
// canonical incidents, newest first. Rows without a canonical time are
// excluded at the source. When opts.PrioritizeCoordinates is set, rows with
// usable coordinates sort ahead of rows without.
func (s *Store) UnifiedIncidents(ctx context.Context, opts contract.TimelineOptions) ([]schema.CanonicalIncident, error) {
	fields := []schema.CanonicalField{
		schema.FieldIncidentTime,
		schema.FieldIncidentType,
		schema.FieldDescription,
		schema.FieldAddress,
		schema.FieldNeighborhood,
		schema.FieldLatitude,
		schema.FieldLongitude,
	}
	inner := unifiedProjection(s.backend, fields, func(m schema.SourceMapping) []string {
		return []string{notNull(m, schema.FieldIncidentTime, s.backend)}
	})

	var sb strings.Builder
	sb.WriteString("SELECT source_table, incident_time, incident_type, description, address, neighborhood, latitude, longitude FROM (")
	sb.WriteString(inner)
	sb.WriteString(") u")

	var args []any
	if opts.Source != nil {
		sb.WriteString(" WHERE source_table = ")
		sb.WriteString(placeholder(1, s.backend))
		args = append(args, string(*opts.Source))
	}

	sb.WriteString(" ORDER BY ")
	if opts.PrioritizeCoordinates {
		sb.WriteString("CASE WHEN latitude IS NOT NULL AND longitude IS NOT NULL AND latitude != 0 AND longitude != 0 THEN 0 ELSE 1 END, ")
	}
	sb.WriteString("incident_time DESC")
	if opts.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query unified incidents: %w", err)
	}
	defer rows.Close()

	var out []schema.CanonicalIncident
	for rows.Next() {
		var inc schema.CanonicalIncident
		if err := rows.Scan(
			&inc.SourceTable, &inc.IncidentTime, &inc.IncidentType,
			&inc.Description, &inc.Address, &inc.Neighborhood,
			&inc.Latitude, &inc.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan unified incident: %w", err)
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}

// NeighborhoodRows returns every row carrying a non-empty neighborhood,
// across all sources. Rows without a time still count here.
func (s *Store) NeighborhoodRows(ctx context.Context) ([]schema.NeighborhoodRow, error) {
	fields := []schema.CanonicalField{schema.FieldIncidentType, schema.FieldNeighborhood}
	query := unifiedProjection(s.backend, fields, func(m schema.SourceMapping) []string {
		return []string{notEmpty(m, schema.FieldNeighborhood, s.backend)}
	})

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query neighborhood rows: %w", err)
	}
	defer rows.Close()

	var out []schema.NeighborhoodRow
	for rows.Next() {
		var r schema.NeighborhoodRow
		if err := rows.Scan(&r.SourceTable, &r.IncidentType, &r.Neighborhood); err != nil {
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TemporalRows returns rows that carry both a time and a neighborhood,
// across all sources.
func (s *Store) TemporalRows(ctx context.Context) ([]schema.TemporalRow, error) {
	fields := []schema.CanonicalField{
		schema.FieldNeighborhood,
		schema.FieldIncidentTime,
		schema.FieldIncidentType,
	}
	query := unifiedProjection(s.backend, fields, func(m schema.SourceMapping) []string {
		return []string{
			notNull(m, schema.FieldIncidentTime, s.backend),
			notEmpty(m, schema.FieldNeighborhood, s.backend),
		}
	})

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query temporal rows: %w", err)
	}
	defer rows.Close()

	var out []schema.TemporalRow
	for rows.Next() {
		var r schema.TemporalRow
		var source schema.SourceTable
		if err := rows.Scan(&source, &r.Neighborhood, &r.IncidentTime, &r.IncidentType); err != nil {
			return nil, fmt.Errorf("failed to scan temporal row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
