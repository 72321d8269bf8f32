package cmd

import (
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/internal/safetystore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd runs database migrations for the source tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the incident store.

Migrations allow:
- Creating the six source tables on a fresh database
- Upgrading to new schema versions when safetylens is updated
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  safetylens migrate

  # Rollback to the initial state
  safetylens migrate --target-version 0`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := safetystore.Migrate(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
	},
}
