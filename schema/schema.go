// Package schema has models, enums and shared helpers for all parts of
// safetylens.
package schema

// CanonicalIncident is the unified, source-tagged projection of one raw
// source row. It is a read-only view: there is no identity or lifecycle
// beyond the underlying row's.
type CanonicalIncident struct {
	SourceTable  SourceTable `json:"source_table"`
	IncidentTime string      `json:"incident_time"`
	IncidentType *string     `json:"incident_type"`
	Description  *string     `json:"description"`
	Address      *string     `json:"address"`
	Neighborhood *string     `json:"neighborhood"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
}

// HasCoordinates reports whether both coordinates are present, non-null and
// not exactly zero. Zero is treated as a sentinel for "missing" because the
// upstream feeds use it that way.
func (c CanonicalIncident) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil && *c.Latitude != 0 && *c.Longitude != 0
}

// NeighborhoodRow is the minimal projection used by neighborhood totals:
// rows with a non-empty neighborhood, no time requirement.
type NeighborhoodRow struct {
	SourceTable  SourceTable
	IncidentType *string
	Neighborhood string
}

// TemporalRow is the projection used by the danger analysis: rows with both
// a non-null time and a non-empty neighborhood.
type TemporalRow struct {
	Neighborhood string
	IncidentTime string
	IncidentType *string
}

// KeyedTime pairs a source-scoped identifier with its timestamp. Used by
// the monthly aggregation, which counts distinct police keys per month.
type KeyedTime struct {
	UniqueKey string
	Timestamp string
}

// YearRow is the projection used by the per-year fire ranking.
type YearRow struct {
	Neighborhood string
	IncidentTime string
}

// SituationAction pairs a fire primary situation with a primary action.
type SituationAction struct {
	Situation string `json:"primary_situation"`
	Action    string `json:"action_taken_primary"`
}

// ResponseRecord is one dispatch call with its received and on-scene
// timestamps, as stored (raw strings).
type ResponseRecord struct {
	CallType string
	Received string
	OnScene  string
}

// InspectionRecord is one fire inspection row as returned by the
// incomplete-inspections listing.
type InspectionRecord struct {
	InspectionNumber          string  `json:"inspection_number"`
	InspectionStartDate       *string `json:"inspection_start_date"`
	InspectionEndDate         *string `json:"inspection_end_date"`
	InspectionStatus          *string `json:"inspection_status"`
	InspectionType            *string `json:"inspection_type"`
	InspectionTypeDescription *string `json:"inspection_type_description"`
	Address                   *string `json:"address"`
	Zipcode                   *string `json:"zipcode"`
}
