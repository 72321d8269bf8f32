// Package parquet exports the canonical incident stream to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/bayviewlabs/safetylens/schema"
)

// IncidentRecord is the Parquet row shape for one canonical incident.
type IncidentRecord struct {
	// SourceTable names the source the row came from
	SourceTable string `parquet:"source_table,snappy"`

	// IncidentTime is the canonical timestamp, as stored (raw string)
	IncidentTime string `parquet:"incident_time,snappy"`

	// IncidentType is the source's category column (nullable)
	IncidentType *string `parquet:"incident_type,optional,snappy"`

	// Description is the source's secondary descriptor (nullable)
	Description *string `parquet:"description,optional,snappy"`

	// Address is the incident street address (nullable)
	Address *string `parquet:"address,optional,snappy"`

	// Neighborhood is the canonical area label (nullable)
	Neighborhood *string `parquet:"neighborhood,optional,snappy"`

	// Latitude in decimal degrees (nullable)
	Latitude *float64 `parquet:"latitude,optional,snappy"`

	// Longitude in decimal degrees (nullable)
	Longitude *float64 `parquet:"longitude,optional,snappy"`
}

// FromIncident converts a canonical incident to its Parquet row.
func FromIncident(inc schema.CanonicalIncident) IncidentRecord {
	return IncidentRecord{
		SourceTable:  string(inc.SourceTable),
		IncidentTime: inc.IncidentTime,
		IncidentType: inc.IncidentType,
		Description:  inc.Description,
		Address:      inc.Address,
		Neighborhood: inc.Neighborhood,
		Latitude:     inc.Latitude,
		Longitude:    inc.Longitude,
	}
}

// WriteIncidentsParquet writes canonical incidents to a Parquet file.
func WriteIncidentsParquet(incidents []schema.CanonicalIncident, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the IncidentRecord struct tags
	writer := parquet.NewGenericWriter[IncidentRecord](file)
	defer func() { _ = writer.Close() }()

	rows := make([]IncidentRecord, len(incidents))
	for i, inc := range incidents {
		rows[i] = FromIncident(inc)
	}

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
