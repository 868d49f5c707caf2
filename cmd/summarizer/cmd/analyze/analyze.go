package analyze

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/parnika15-9/meeting-summarizer/internal/app/api/groq"
	"github.com/parnika15-9/meeting-summarizer/internal/app/batch"
	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
	"github.com/parnika15-9/meeting-summarizer/internal/app/pipeline"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository/jsondir"
	"github.com/parnika15-9/meeting-summarizer/internal/config"
)

var inputDir string
var noProgress bool

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"inputDir specifies the directory of audio files to analyze, example: ./recordings")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the audio files in the specified directory",
	Long: `Analyze the audio files in the specified directory

- Iterate through the audio files in the directory
- Transcribe each file and extract a structured summary
- Save one analysis record per file, same as the HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v\n", err)
		}
		if err := settings.RequireAPIKey(); err != nil {
			log.Fatalf("Configuration error: %v\n", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		client := groq.NewClient(settings.GroqAPIKey, settings.GroqBaseURL)
		p := pipeline.New(
			intake.New(settings.UploadDir, settings.MaxUploadBytes),
			groq.NewTranscriber(client),
			groq.NewAnalyst(client),
			jsondir.New(settings.TranscriptDir, logger),
			logger,
			nil,
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		processor := batch.NewProcessor(p, logger, !noProgress)
		processed, failed, err := processor.Run(ctx, inputDir)
		if err != nil {
			log.Fatalf("Batch run failed: %v\n", err)
		}

		fmt.Printf("analyze finished, processed: %d, failed: %d\n", processed, failed)
	},
}
