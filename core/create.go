package core

import (
	"context"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// Auto-populated values for records created through the API.
const (
	createdTimestampLayout = "2006-01-02 15:04:05+00:00"
	defaultStatus          = "Open"
	defaultRecordSource    = "Web"

	// identifierAttempts bounds collision retries before the write fails
	// with ErrIdentifierExhausted.
	identifierAttempts = 10
)

// newIdentifier draws random tokens until one is unused in the target
// table. Exhausting the retry budget is an error; a record is never
// written with a missing identifier.
func (s *Service) newIdentifier(ctx context.Context, table schema.SourceTable) (string, error) {
	for range identifierAttempts {
		id := s.newID()
		exists, err := s.store.IdentifierExists(ctx, table, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", contract.ErrIdentifierExhausted
}

// CreateServiceRequest validates and appends a 311 service request.
// Missing coordinates are resolved through the geocoder when one is
// configured; geocoder failures leave them null.
func (s *Service) CreateServiceRequest(ctx context.Context, in *schema.ServiceRequestInput) (*schema.ServiceRequestRow, error) {
	required := []struct{ name, value string }{
		{"category", in.Category},
		{"complaint_type", in.ComplaintType},
		{"descriptor", in.Descriptor},
		{"incident_address", in.IncidentAddress},
		{"neighborhood", in.Neighborhood},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &contract.MissingFieldError{Field: f.name}
		}
	}

	id, err := s.newIdentifier(ctx, schema.SourceServiceRequests)
	if err != nil {
		return nil, err
	}

	lat := in.Latitude.Ptr()
	lon := in.Longitude.Ptr()
	if (lat == nil || lon == nil) && s.geo != nil {
		glat, glon, gerr := s.geo.Geocode(ctx, in.IncidentAddress, in.ZipCode)
		if gerr == nil {
			if lat == nil {
				lat = glat
			}
			if lon == nil {
				lon = glon
			}
		}
	}

	row := &schema.ServiceRequestRow{
		UniqueKey:       id,
		CreatedDate:     s.now().UTC().Format(createdTimestampLayout),
		Status:          defaultStatus,
		Category:        in.Category,
		ComplaintType:   in.ComplaintType,
		Descriptor:      in.Descriptor,
		IncidentAddress: in.IncidentAddress,
		Neighborhood:    in.Neighborhood,
		Source:          defaultRecordSource,
		Latitude:        lat,
		Longitude:       lon,
	}
	if err := s.store.InsertServiceRequest(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// CreatePoliceIncident validates and appends a police incident record.
func (s *Service) CreatePoliceIncident(ctx context.Context, in *schema.PoliceIncidentInput) (*schema.PoliceIncidentRow, error) {
	required := []struct{ name, value string }{
		{"category", in.Category},
		{"descript", in.Descript},
		{"address", in.Address},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &contract.MissingFieldError{Field: f.name}
		}
	}

	id, err := s.newIdentifier(ctx, schema.SourcePoliceIncidents)
	if err != nil {
		return nil, err
	}

	timestamp := s.now().UTC().Format(createdTimestampLayout)
	if in.Timestamp != nil && *in.Timestamp != "" {
		timestamp = *in.Timestamp
	}

	row := &schema.PoliceIncidentRow{
		UniqueKey:  id,
		Category:   in.Category,
		Descript:   in.Descript,
		DayOfWeek:  in.DayOfWeek,
		PdDistrict: in.PdDistrict,
		Resolution: in.Resolution,
		Address:    in.Address,
		Longitude:  in.Longitude.Ptr(),
		Latitude:   in.Latitude.Ptr(),
		Location:   in.Location,
		PdID:       in.PdID,
		Timestamp:  timestamp,
	}
	if err := s.store.InsertPoliceIncident(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// CreateFireIncident validates and appends a fire incident record.
func (s *Service) CreateFireIncident(ctx context.Context, in *schema.FireIncidentInput) (*schema.FireIncidentRow, error) {
	required := []struct{ name, value string }{
		{"Address", in.Address},
		{"Incident Date", in.IncidentDate},
		{"Primary Situation", in.PrimarySituation},
		{"Analysis Neighborhood", in.AnalysisNeighborhood},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &contract.MissingFieldError{Field: f.name}
		}
	}

	id, err := s.newIdentifier(ctx, schema.SourceFireIncidents)
	if err != nil {
		return nil, err
	}

	row := &schema.FireIncidentRow{
		IncidentNumber:       id,
		ExposureNumber:       in.ExposureNumber,
		ID:                   in.ID,
		Address:              in.Address,
		IncidentDate:         in.IncidentDate,
		CallNumber:           in.CallNumber,
		AlarmDtTm:            in.AlarmDtTm,
		ArrivalDtTm:          in.ArrivalDtTm,
		CloseDtTm:            in.CloseDtTm,
		City:                 in.City,
		ZIPCode:              in.ZIPCode,
		SuppressionUnits:     in.SuppressionUnits,
		SuppressionPersonnel: in.SuppressionPersonnel,
		EMSUnits:             in.EMSUnits,
		EMSPersonnel:         in.EMSPersonnel,
		OtherUnits:           in.OtherUnits,
		OtherPersonnel:       in.OtherPersonnel,
		FireFatalities:       in.FireFatalities,
		FireInjuries:         in.FireInjuries,
		CivilianFatalities:   in.CivilianFatalities,
		CivilianInjuries:     in.CivilianInjuries,
		NumberOfAlarms:       in.NumberOfAlarms,
		PrimarySituation:     in.PrimarySituation,
		MutualAid:            in.MutualAid,
		ActionTakenPrimary:   in.ActionTakenPrimary,
		ActionTakenSecondary: in.ActionTakenSecondary,
		PropertyUse:          in.PropertyUse,
		SupervisorDistrict:   in.SupervisorDistrict,
		AnalysisNeighborhood: in.AnalysisNeighborhood,
	}
	if err := s.store.InsertFireIncident(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}
