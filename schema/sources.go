package schema

// CanonicalField names one slot of the canonical incident projection.
type CanonicalField string

// All canonical fields, in projection order.
const (
	FieldIncidentTime CanonicalField = "incident_time"
	FieldIncidentType CanonicalField = "incident_type"
	FieldDescription  CanonicalField = "description"
	FieldAddress      CanonicalField = "address"
	FieldNeighborhood CanonicalField = "neighborhood"
	FieldLatitude     CanonicalField = "latitude"
	FieldLongitude    CanonicalField = "longitude"
)

// SourceMapping binds the canonical fields to the columns of one source
// table. An empty column means the source lacks that field and the
// projection emits a NULL literal. Purely declarative; the store turns it
// into SELECT lists and tests check it for completeness.
type SourceMapping struct {
	Table        SourceTable
	IncidentTime string
	IncidentType string
	Description  string
	Address      string
	Neighborhood string
	Latitude     string
	Longitude    string
}

// Column returns the source column for a canonical field, or "" when the
// source has no such column.
func (m SourceMapping) Column(f CanonicalField) string {
	switch f {
	case FieldIncidentTime:
		return m.IncidentTime
	case FieldIncidentType:
		return m.IncidentType
	case FieldDescription:
		return m.Description
	case FieldAddress:
		return m.Address
	case FieldNeighborhood:
		return m.Neighborhood
	case FieldLatitude:
		return m.Latitude
	case FieldLongitude:
		return m.Longitude
	}
	return ""
}

// SourceMappings is the per-source column mapping table. Column names are
// taken verbatim from the upstream datasets, spaces, casing, double spaces
// and all. Only three sources carry native coordinates.
var SourceMappings = []SourceMapping{
	{
		Table:        SourceServiceRequests,
		IncidentTime: "created_date",
		IncidentType: "category",
		Description:  "complaint_type",
		Address:      "incident_address",
		Neighborhood: "neighborhood",
		Latitude:     "latitude",
		Longitude:    "longitude",
	},
	{
		Table:        SourceFireIncidents,
		IncidentTime: "Incident Date",
		IncidentType: "Primary Situation",
		Description:  "Action Taken Primary",
		Address:      "Address",
		Neighborhood: "Analysis Neighborhood",
	},
	{
		Table:        SourceFireSafetyComplaints,
		IncidentTime: "Received Date",
		IncidentType: "Complaint Item Type Description",
		Description:  "Disposition",
		Address:      "Address",
		// Upstream dataset really has two spaces in this column name.
		Neighborhood: "Neighborhood  District",
	},
	{
		Table:        SourceFireViolations,
		IncidentTime: "violation date",
		IncidentType: "violation item description",
		Description:  "Status",
		Address:      "Address",
		Neighborhood: "neighborhood district",
	},
	{
		Table:        SourceFireServiceCalls,
		IncidentTime: "call_date",
		IncidentType: "call_type",
		Description:  "call_final_disposition",
		Address:      "address",
		Neighborhood: "supervisor_district",
		Latitude:     "latitude",
		Longitude:    "longitude",
	},
	{
		Table:        SourcePoliceIncidents,
		IncidentTime: "timestamp",
		IncidentType: "category",
		Description:  "descript",
		Address:      "address",
		Neighborhood: "pddistrict",
		Latitude:     "latitude",
		Longitude:    "longitude",
	},
}

// MappingFor returns the mapping for a source table.
func MappingFor(table SourceTable) (SourceMapping, bool) {
	for _, m := range SourceMappings {
		if m.Table == table {
			return m, true
		}
	}
	return SourceMapping{}, false
}
