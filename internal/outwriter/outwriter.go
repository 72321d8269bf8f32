// Package outwriter has output and writer logic for the CLI commands.
package outwriter

import (
	"fmt"
	"io"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/internal/parquet"
	"github.com/bayviewlabs/safetylens/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteIncidents exports canonical incidents using the configured output
// format. Parquet always requires an output file; CSV and JSON fall back
// to stdout.
func (ow *OutWriter) WriteIncidents(incidents []schema.CanonicalIncident, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIncidentCSV(w, incidents)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteIncidentsParquet(incidents, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, incidents)
		}, "Wrote JSON")
	}
}

// WriteStats renders the dataset overview tables.
func (ow *OutWriter) WriteStats(breakdown *schema.TypeBreakdown, top *schema.TopNeighborhoodsResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writeBreakdownTable(w, breakdown); err != nil {
			return err
		}
		return writeNeighborhoodTable(w, top)
	}, "Wrote stats")
}
