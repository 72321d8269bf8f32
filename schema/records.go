package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat unmarshals a coordinate supplied either as a JSON number or a
// numeric string. Anything else decodes to the zero value with Valid false,
// matching the tolerant parsing of the upstream feeds.
type FlexFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%g", f.Value)), nil
}

// Ptr returns the value as a nullable float.
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// ServiceRequestInput is the create-complaint payload. Field names follow
// the 311 dataset's column vocabulary.
type ServiceRequestInput struct {
	Category        string    `json:"category"`
	ComplaintType   string    `json:"complaint_type"`
	Descriptor      string    `json:"descriptor"`
	IncidentAddress string    `json:"incident_address"`
	Neighborhood    string    `json:"neighborhood"`
	Latitude        FlexFloat `json:"latitude"`
	Longitude       FlexFloat `json:"longitude"`
	ZipCode         string    `json:"zip_code"`
}

// PoliceIncidentInput is the create-police-incident payload.
type PoliceIncidentInput struct {
	Category   string    `json:"category"`
	Descript   string    `json:"descript"`
	DayOfWeek  *string   `json:"dayofweek"`
	PdDistrict *string   `json:"pddistrict"`
	Resolution *string   `json:"resolution"`
	Address    string    `json:"address"`
	Longitude  FlexFloat `json:"longitude"`
	Latitude   FlexFloat `json:"latitude"`
	Location   *string   `json:"location"`
	PdID       *string   `json:"pdid"`
	Timestamp  *string   `json:"timestamp"`
}

// FireIncidentInput is the create-fire-incident payload. The JSON keys
// mirror the dataset's spaced column names.
type FireIncidentInput struct {
	ExposureNumber       *string `json:"Exposure Number"`
	ID                   *string `json:"ID"`
	Address              string  `json:"Address"`
	IncidentDate         string  `json:"Incident Date"`
	CallNumber           *string `json:"Call Number"`
	AlarmDtTm            *string `json:"Alarm DtTm"`
	ArrivalDtTm          *string `json:"Arrival DtTm"`
	CloseDtTm            *string `json:"Close DtTm"`
	City                 *string `json:"City"`
	ZIPCode              *string `json:"ZIP Code"`
	SuppressionUnits     *string `json:"Suppression Units"`
	SuppressionPersonnel *string `json:"Suppression Personnel"`
	EMSUnits             *string `json:"EMS Units"`
	EMSPersonnel         *string `json:"EMS Personnel"`
	OtherUnits           *string `json:"Other Units"`
	OtherPersonnel       *string `json:"Other Personnel"`
	FireFatalities       *string `json:"Fire Fatalities"`
	FireInjuries         *string `json:"Fire Injuries"`
	CivilianFatalities   *string `json:"Civilian Fatalities"`
	CivilianInjuries     *string `json:"Civilian Injuries"`
	NumberOfAlarms       *string `json:"Number of Alarms"`
	PrimarySituation     string  `json:"Primary Situation"`
	MutualAid            *string `json:"Mutual Aid"`
	ActionTakenPrimary   *string `json:"Action Taken Primary"`
	ActionTakenSecondary *string `json:"Action Taken Secondary"`
	PropertyUse          *string `json:"Property Use"`
	SupervisorDistrict   *string `json:"Supervisor District"`
	AnalysisNeighborhood string  `json:"Analysis Neighborhood"`
}

// ServiceRequestRow is a fully-populated 311 row as inserted and returned.
type ServiceRequestRow struct {
	UniqueKey                   string   `json:"unique_key"`
	CreatedDate                 string   `json:"created_date"`
	ClosedDate                  *string  `json:"closed_date"`
	ResolutionActionUpdatedDate *string  `json:"resolution_action_updated_date"`
	Status                      string   `json:"status"`
	StatusNotes                 *string  `json:"status_notes"`
	AgencyName                  *string  `json:"agency_name"`
	Category                    string   `json:"category"`
	ComplaintType               string   `json:"complaint_type"`
	Descriptor                  string   `json:"descriptor"`
	IncidentAddress             string   `json:"incident_address"`
	SupervisorDistrict          *string  `json:"supervisor_district"`
	Neighborhood                string   `json:"neighborhood"`
	Location                    *string  `json:"location"`
	Source                      string   `json:"source"`
	MediaURL                    *string  `json:"media_url"`
	Latitude                    *float64 `json:"latitude"`
	Longitude                   *float64 `json:"longitude"`
	PoliceDistrict              *string  `json:"police_district"`
}

// PoliceIncidentRow is a fully-populated police incident row.
type PoliceIncidentRow struct {
	UniqueKey  string   `json:"unique_key"`
	Category   string   `json:"category"`
	Descript   string   `json:"descript"`
	DayOfWeek  *string  `json:"dayofweek"`
	PdDistrict *string  `json:"pddistrict"`
	Resolution *string  `json:"resolution"`
	Address    string   `json:"address"`
	Longitude  *float64 `json:"longitude"`
	Latitude   *float64 `json:"latitude"`
	Location   *string  `json:"location"`
	PdID       *string  `json:"pdid"`
	Timestamp  string   `json:"timestamp"`
}

// FireIncidentRow is a fully-populated fire incident row.
type FireIncidentRow struct {
	IncidentNumber       string  `json:"Incident Number"`
	ExposureNumber       *string `json:"Exposure Number"`
	ID                   *string `json:"ID"`
	Address              string  `json:"Address"`
	IncidentDate         string  `json:"Incident Date"`
	CallNumber           *string `json:"Call Number"`
	AlarmDtTm            *string `json:"Alarm DtTm"`
	ArrivalDtTm          *string `json:"Arrival DtTm"`
	CloseDtTm            *string `json:"Close DtTm"`
	City                 *string `json:"City"`
	ZIPCode              *string `json:"ZIP Code"`
	SuppressionUnits     *string `json:"Suppression Units"`
	SuppressionPersonnel *string `json:"Suppression Personnel"`
	EMSUnits             *string `json:"EMS Units"`
	EMSPersonnel         *string `json:"EMS Personnel"`
	OtherUnits           *string `json:"Other Units"`
	OtherPersonnel       *string `json:"Other Personnel"`
	FireFatalities       *string `json:"Fire Fatalities"`
	FireInjuries         *string `json:"Fire Injuries"`
	CivilianFatalities   *string `json:"Civilian Fatalities"`
	CivilianInjuries     *string `json:"Civilian Injuries"`
	NumberOfAlarms       *string `json:"Number of Alarms"`
	PrimarySituation     string  `json:"Primary Situation"`
	MutualAid            *string `json:"Mutual Aid"`
	ActionTakenPrimary   *string `json:"Action Taken Primary"`
	ActionTakenSecondary *string `json:"Action Taken Secondary"`
	PropertyUse          *string `json:"Property Use"`
	SupervisorDistrict   *string `json:"Supervisor District"`
	AnalysisNeighborhood string  `json:"Analysis Neighborhood"`
}
