package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parnika15-9/meeting-summarizer/cmd/summarizer/cmd/analyze"
	"github.com/parnika15-9/meeting-summarizer/cmd/summarizer/cmd/export"
	"github.com/parnika15-9/meeting-summarizer/cmd/summarizer/cmd/serve"
	"github.com/parnika15-9/meeting-summarizer/cmd/summarizer/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "summarizer",
	Short: "Transcribe meeting recordings and extract structured summaries",
	Long: `Transcribe meeting recordings and extract structured summaries.

- serve starts the HTTP API (upload, analyze, history)
- analyze runs the same pipeline over local audio files
- export writes the analysis history to an Excel workbook`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
