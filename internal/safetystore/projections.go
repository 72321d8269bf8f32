package safetystore

import (
	"context"
	"fmt"

	"github.com/bayviewlabs/safetylens/schema"
)

// CrimeCount counts police incidents with a timestamp.
func (s *Store) CrimeCount(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IS NOT NULL",
		quoteIdent(string(schema.SourcePoliceIncidents), s.backend),
		quoteIdent("timestamp", s.backend))
	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count police incidents: %w", err)
	}
	return n, nil
}

// FireCount counts fire incidents with an incident date.
func (s *Store) FireCount(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IS NOT NULL",
		quoteIdent(string(schema.SourceFireIncidents), s.backend),
		quoteIdent("Incident Date", s.backend))
	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count fire incidents: %w", err)
	}
	return n, nil
}

// CrimeIncidentTimes returns every police (unique_key, timestamp) pair with
// a non-null timestamp.
func (s *Store) CrimeIncidentTimes(ctx context.Context) ([]schema.KeyedTime, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s IS NOT NULL",
		quoteIdent("unique_key", s.backend),
		quoteIdent("timestamp", s.backend),
		quoteIdent(string(schema.SourcePoliceIncidents), s.backend),
		quoteIdent("timestamp", s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query police incident times: %w", err)
	}
	defer rows.Close()

	var out []schema.KeyedTime
	for rows.Next() {
		var kt schema.KeyedTime
		if err := rows.Scan(&kt.UniqueKey, &kt.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan police incident time: %w", err)
		}
		out = append(out, kt)
	}
	return out, rows.Err()
}

// FireIncidentDates returns every non-null fire incident date.
func (s *Store) FireIncidentDates(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL",
		quoteIdent("Incident Date", s.backend),
		quoteIdent(string(schema.SourceFireIncidents), s.backend),
		quoteIdent("Incident Date", s.backend))
	return s.queryStrings(ctx, query, "fire incident dates")
}

// CrimeCategories returns the category value of every police incident.
// Nulls come back as empty strings so callers see one value space.
func (s *Store) CrimeCategories(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT COALESCE(%s, '') FROM %s",
		quoteIdent("category", s.backend),
		quoteIdent(string(schema.SourcePoliceIncidents), s.backend))
	return s.queryStrings(ctx, query, "police categories")
}

func (s *Store) queryStrings(ctx context.Context, query, what string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// FireSituationActions returns (primary situation, primary action) pairs for
// every fire incident, with nulls normalized to empty strings.
func (s *Store) FireSituationActions(ctx context.Context) ([]schema.SituationAction, error) {
	query := fmt.Sprintf("SELECT COALESCE(%s, ''), COALESCE(%s, '') FROM %s",
		quoteIdent("Primary Situation", s.backend),
		quoteIdent("Action Taken Primary", s.backend),
		quoteIdent(string(schema.SourceFireIncidents), s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fire situations: %w", err)
	}
	defer rows.Close()

	var out []schema.SituationAction
	for rows.Next() {
		var sa schema.SituationAction
		if err := rows.Scan(&sa.Situation, &sa.Action); err != nil {
			return nil, fmt.Errorf("failed to scan fire situation: %w", err)
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

// FireYearRows returns (neighborhood, incident date) pairs for fire
// incidents with a non-empty neighborhood.
func (s *Store) FireYearRows(ctx context.Context) ([]schema.YearRow, error) {
	hood := quoteIdent("Analysis Neighborhood", s.backend)
	query := fmt.Sprintf(
		"SELECT %s, COALESCE(%s, '') FROM %s WHERE %s IS NOT NULL AND %s != ''",
		hood,
		quoteIdent("Incident Date", s.backend),
		quoteIdent(string(schema.SourceFireIncidents), s.backend),
		hood, hood)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fire year rows: %w", err)
	}
	defer rows.Close()

	var out []schema.YearRow
	for rows.Next() {
		var yr schema.YearRow
		if err := rows.Scan(&yr.Neighborhood, &yr.IncidentTime); err != nil {
			return nil, fmt.Errorf("failed to scan fire year row: %w", err)
		}
		out = append(out, yr)
	}
	return out, rows.Err()
}

// ResponseRecords returns dispatch calls with a call type and both the
// received and on-scene timestamps present. Ordering of the two timestamps
// is checked by the aggregation, not here.
func (s *Store) ResponseRecords(ctx context.Context) ([]schema.ResponseRecord, error) {
	callType := quoteIdent("call_type", s.backend)
	received := quoteIdent("received_timestamp", s.backend)
	onScene := quoteIdent("on_scene_timestamp", s.backend)
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s IS NOT NULL AND %s != '' AND %s IS NOT NULL AND %s IS NOT NULL",
		callType, received, onScene,
		quoteIdent(string(schema.SourceFireServiceCalls), s.backend),
		callType, callType, received, onScene)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch calls: %w", err)
	}
	defer rows.Close()

	var out []schema.ResponseRecord
	for rows.Next() {
		var rec schema.ResponseRecord
		if err := rows.Scan(&rec.CallType, &rec.Received, &rec.OnScene); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch call: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// IncompleteInspections lists fire inspections without an end date, most
// recent start first. The limit is a validated integer, never user text.
func (s *Store) IncompleteInspections(ctx context.Context, limit int) ([]schema.InspectionRecord, error) {
	number := quoteIdent("Inspection Number", s.backend)
	start := quoteIdent("Inspection Start Date", s.backend)
	end := quoteIdent("Inspection End Date", s.backend)
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s IS NOT NULL AND %s IS NULL ORDER BY %s DESC LIMIT %d",
		number, start, end,
		quoteIdent("Inspection Status", s.backend),
		quoteIdent("Inspection Type", s.backend),
		quoteIdent("Inspection Type Description", s.backend),
		quoteIdent("Address", s.backend),
		quoteIdent("Zipcode", s.backend),
		quoteIdent("fire_inspections", s.backend),
		number, end, start, limit)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomplete inspections: %w", err)
	}
	defer rows.Close()

	var out []schema.InspectionRecord
	for rows.Next() {
		var ir schema.InspectionRecord
		if err := rows.Scan(
			&ir.InspectionNumber, &ir.InspectionStartDate, &ir.InspectionEndDate,
			&ir.InspectionStatus, &ir.InspectionType, &ir.InspectionTypeDescription,
			&ir.Address, &ir.Zipcode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		out = append(out, ir)
	}
	return out, rows.Err()
}
