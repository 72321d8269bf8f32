// Package cmd defines the command-line interface for safetylens.
package cmd

import (
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("addr", contract.DefaultListenAddr, "Listen address for the HTTP API")
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("geocoder-url", contract.DefaultGeocoderBaseURL, "Base URL of the Nominatim geocoding service")
	rootCmd.PersistentFlags().String("geocoder-timeout", "", "Timeout for geocoding lookups (e.g., 5s)")
	rootCmd.PersistentFlags().String("cors-origins", "", "Comma-separated list of allowed CORS origins (empty allows all)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("output", string(schema.JSONOut), "Output format: csv or json or parquet")
	exportCmd.Flags().String("output-file", "", "Optional path to write output to")
	exportCmd.Flags().IntP("limit", "l", 0, "Maximum number of incidents to export (0 = no limit)")
	exportCmd.Flags().String("source", "", "Restrict export to one source table")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}

	// Bind all flags of statsCmd to Viper
	statsCmd.Flags().Int("top", contract.DefaultNeighborhoodLimit, "Number of neighborhoods to display")
	if err := viper.BindPFlags(statsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding stats flags", err)
	}
}
