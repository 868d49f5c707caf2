package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/parnika15-9/meeting-summarizer/internal/api/server"
	"github.com/parnika15-9/meeting-summarizer/internal/app/api/groq"
	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
	"github.com/parnika15-9/meeting-summarizer/internal/app/pipeline"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository/jsondir"
	"github.com/parnika15-9/meeting-summarizer/internal/config"
	"github.com/parnika15-9/meeting-summarizer/internal/metrics"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the meeting summarizer HTTP API",
	Long: `Start the meeting summarizer HTTP API

- POST /transcribe accepts a meeting recording and returns its structured analysis
- GET /history lists recent analysis records
- GET /metrics exposes Prometheus metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v\n", err)
		}
		if err := settings.RequireAPIKey(); err != nil {
			log.Fatalf("Configuration error: %v\n", err)
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		registry := prometheus.NewRegistry()
		m := metrics.NewMetrics(registry)

		client := groq.NewClient(settings.GroqAPIKey, settings.GroqBaseURL)
		store := jsondir.New(settings.TranscriptDir, logger)
		p := pipeline.New(
			intake.New(settings.UploadDir, settings.MaxUploadBytes),
			groq.NewTranscriber(client),
			groq.NewAnalyst(client),
			store,
			logger,
			m,
		)

		srv := server.NewServer(server.Config{
			Host:           settings.Host,
			Port:           settings.Port,
			MaxUploadBytes: settings.MaxUploadBytes,
			// Collaborator calls run for tens of seconds on long
			// recordings; the write timeout bounds them.
			ReadTimeout:  5 * time.Minute,
			WriteTimeout: 10 * time.Minute,
			IdleTimeout:  2 * time.Minute,
			Environment:  settings.Environment,
		}, p, store, m, registry, logger)

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v\n", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("Shutdown failed: %v\n", err)
		}
	},
}
