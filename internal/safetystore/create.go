package safetystore

import (
	"context"
	"fmt"
	"strings"

	"github.com/bayviewlabs/safetylens/schema"
)

// identifierColumns maps each writable source to its primary identifier
// column. Sources absent here have no identifier and no write path.
var identifierColumns = map[schema.SourceTable]string{
	schema.SourceServiceRequests: "unique_key",
	schema.SourcePoliceIncidents: "unique_key",
	schema.SourceFireIncidents:   "Incident Number",
}

// IdentifierExists reports whether id is already used as the primary
// identifier of the given source table.
func (s *Store) IdentifierExists(ctx context.Context, table schema.SourceTable, id string) (bool, error) {
	col, ok := identifierColumns[table]
	if !ok {
		return false, fmt.Errorf("source table %s has no identifier column", table)
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = %s",
		quoteIdent(string(table), s.backend),
		quoteIdent(col, s.backend),
		placeholder(1, s.backend))
	var n int
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check identifier in %s: %w", table, err)
	}
	return n > 0, nil
}

func (s *Store) insert(ctx context.Context, table schema.SourceTable, columns []string, values []any) error {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c, s.backend)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(string(table), s.backend),
		strings.Join(quoted, ", "),
		placeholderList(len(values), s.backend))
	if _, err := s.db.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// InsertServiceRequest appends a fully-populated 311 row.
func (s *Store) InsertServiceRequest(ctx context.Context, row *schema.ServiceRequestRow) error {
	columns := []string{
		"unique_key", "created_date", "closed_date", "resolution_action_updated_date",
		"status", "status_notes", "agency_name", "category", "complaint_type",
		"descriptor", "incident_address", "supervisor_district", "neighborhood",
		"location", "source", "media_url", "latitude", "longitude", "police_district",
	}
	values := []any{
		row.UniqueKey, row.CreatedDate, row.ClosedDate, row.ResolutionActionUpdatedDate,
		row.Status, row.StatusNotes, row.AgencyName, row.Category, row.ComplaintType,
		row.Descriptor, row.IncidentAddress, row.SupervisorDistrict, row.Neighborhood,
		row.Location, row.Source, row.MediaURL, row.Latitude, row.Longitude, row.PoliceDistrict,
	}
	return s.insert(ctx, schema.SourceServiceRequests, columns, values)
}

// InsertPoliceIncident appends a fully-populated police incident row.
func (s *Store) InsertPoliceIncident(ctx context.Context, row *schema.PoliceIncidentRow) error {
	columns := []string{
		"unique_key", "category", "descript", "dayofweek", "pddistrict",
		"resolution", "address", "longitude", "latitude", "location", "pdid", "timestamp",
	}
	values := []any{
		row.UniqueKey, row.Category, row.Descript, row.DayOfWeek, row.PdDistrict,
		row.Resolution, row.Address, row.Longitude, row.Latitude, row.Location, row.PdID, row.Timestamp,
	}
	return s.insert(ctx, schema.SourcePoliceIncidents, columns, values)
}

// InsertFireIncident appends a fully-populated fire incident row.
func (s *Store) InsertFireIncident(ctx context.Context, row *schema.FireIncidentRow) error {
	columns := []string{
		"Incident Number", "Exposure Number", "ID", "Address", "Incident Date",
		"Call Number", "Alarm DtTm", "Arrival DtTm", "Close DtTm", "City", "ZIP Code",
		"Suppression Units", "Suppression Personnel", "EMS Units", "EMS Personnel",
		"Other Units", "Other Personnel", "Fire Fatalities", "Fire Injuries",
		"Civilian Fatalities", "Civilian Injuries", "Number of Alarms",
		"Primary Situation", "Mutual Aid", "Action Taken Primary", "Action Taken Secondary",
		"Property Use", "Supervisor District", "Analysis Neighborhood",
	}
	values := []any{
		row.IncidentNumber, row.ExposureNumber, row.ID, row.Address, row.IncidentDate,
		row.CallNumber, row.AlarmDtTm, row.ArrivalDtTm, row.CloseDtTm, row.City, row.ZIPCode,
		row.SuppressionUnits, row.SuppressionPersonnel, row.EMSUnits, row.EMSPersonnel,
		row.OtherUnits, row.OtherPersonnel, row.FireFatalities, row.FireInjuries,
		row.CivilianFatalities, row.CivilianInjuries, row.NumberOfAlarms,
		row.PrimarySituation, row.MutualAid, row.ActionTakenPrimary, row.ActionTakenSecondary,
		row.PropertyUse, row.SupervisorDistrict, row.AnalysisNeighborhood,
	}
	return s.insert(ctx, schema.SourceFireIncidents, columns, values)
}
