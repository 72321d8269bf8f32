package cmd

import (
	"github.com/bayviewlabs/safetylens/core"
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/internal/outwriter"
	"github.com/bayviewlabs/safetylens/internal/safetystore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statsCmd prints incident statistics to the terminal.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the incident type breakdown and top neighborhoods.",
	Long: `Summarize the incident stream without starting the server.

Prints two tables:
- The fire / police / 311 share of all stored incidents
- The neighborhoods with the most incidents across all sources

Examples:
  # Default view
  safetylens stats

  # Widen the neighborhood ranking
  safetylens stats --top 50`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runStats(viper.GetInt("top")); err != nil {
			contract.LogFatal("Cannot run stats", err)
		}
	},
}

func runStats(top int) error {
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

	breakdown, err := svc.TypeBreakdown(rootCtx)
	if err != nil {
		return err
	}
	neighborhoods, err := svc.TopNeighborhoods(rootCtx, top, nil)
	if err != nil {
		return err
	}

	return outwriter.NewOutWriter().WriteStats(breakdown, neighborhoods, cfg)
}
