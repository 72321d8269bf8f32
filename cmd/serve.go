package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bayviewlabs/safetylens/core"
	"github.com/bayviewlabs/safetylens/internal/api"
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/internal/geocode"
	"github.com/bayviewlabs/safetylens/internal/safetystore"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds how long in-flight requests may run after SIGTERM.
const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the public safety statistics API server.",
	Long: `Start the HTTP server exposing the unified incident stream.

Serves:
- The merged incident timeline across all six source tables
- Neighborhood rankings and temporal danger analysis
- Fire department situation, inspection and response-time statistics
- Record creation for 311 requests, police incidents and fire incidents

The server stops gracefully on SIGINT/SIGTERM.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runServe(rootCtx); err != nil {
			contract.LogFatal("Cannot run server", err)
		}
	},
}

func runServe(ctx context.Context) error {
	log := newLogger(cfg.LogLevel)

	// 1. Open the store and keep it for the lifetime of the server.
	store, err := safetystore.Open(cfg.Backend, cfg.DBConnect)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			contract.LogWarn("Cannot close store", err)
		}
	}()

	// 2. Wire the service and its HTTP surface.
	geo := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderTimeout)
	svc := core.NewService(store, geo)
	handler := api.NewHandler(svc, log)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 3. Serve until interrupted, then drain.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// newLogger builds a zerolog logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
