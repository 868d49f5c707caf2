package export

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/parnika15-9/meeting-summarizer/internal/app/export"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository/jsondir"
	"github.com/parnika15-9/meeting-summarizer/internal/config"
)

var outputFilePath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "history.xlsx", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 100, "maximum number of records to export")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the analysis history to excel",
	Long: `Export the analysis history to excel

- Export the most recent analysis records to an .xlsx workbook`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v\n", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		store := jsondir.New(settings.TranscriptDir, logger)

		entries, err := store.ListRecent(limit)
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(entries, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
