package cmd

import (
	"github.com/bayviewlabs/safetylens/core"
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/internal/outwriter"
	"github.com/bayviewlabs/safetylens/internal/safetystore"
	"github.com/spf13/cobra"
)

// exportCmd dumps the unified incident stream to a file or stdout.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the unified incident stream.",
	Long: `Export merged incidents from all source tables in one canonical shape.

Each record carries the source table, an identifier, the incident time,
type, description, address, neighborhood and coordinates when present.

Examples:
  # Everything as JSON to stdout
  safetylens export

  # The most recent police incidents as CSV
  safetylens export --source sfpd_incidents --limit 500 --output csv --output-file sfpd.csv

  # Parquet for analytics tools
  safetylens export --output parquet --output-file incidents.parquet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runExport(); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}

func runExport() error {
	store, err := safetystore.Open(cfg.Backend, cfg.DBConnect)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			contract.LogWarn("Cannot close store", err)
		}
	}()

	svc := core.NewService(store, nil)

	timeline, err := svc.Timeline(rootCtx, cfg.Source, cfg.Limit, false)
	if err != nil {
		return err
	}

	return outwriter.NewOutWriter().WriteIncidents(timeline.Data, cfg)
}
