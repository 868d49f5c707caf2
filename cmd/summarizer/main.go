package main

import (
	"fmt"
	"os"

	"github.com/parnika15-9/meeting-summarizer/cmd/summarizer/cmd"
	"github.com/parnika15-9/meeting-summarizer/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
