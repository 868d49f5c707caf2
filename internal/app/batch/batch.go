// Package batch runs the analysis pipeline over audio files already on disk,
// for bulk processing without the HTTP front door.
package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
	"github.com/parnika15-9/meeting-summarizer/internal/app/pipeline"
)

// Processor walks a directory of audio files and feeds each through the
// pipeline sequentially.
type Processor struct {
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
	progress bool
}

// NewProcessor creates a Processor. When progress is true a terminal progress
// bar is rendered to stderr.
func NewProcessor(p *pipeline.Pipeline, logger *slog.Logger, progress bool) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{pipeline: p, logger: logger, progress: progress}
}

// Run processes every file with an allowed audio extension in inputDir, in
// name order. Per-file failures are logged and counted, not fatal; the
// returned error covers only the directory scan itself.
func (p *Processor) Run(ctx context.Context, inputDir string) (processed, failed int, err error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, 0, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && intake.Allowed(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var bar *mpb.Bar
	var container *mpb.Progress
	if p.progress {
		container = mpb.New(
			mpb.WithOutput(os.Stderr),
			mpb.WithRefreshRate(120*time.Millisecond),
		)
		bar = container.AddBar(int64(len(names)),
			mpb.PrependDecorators(
				decor.Name("analyzing ", decor.WC{W: len("analyzing ")}),
				decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.NewPercentage("%.1f", decor.WCSyncSpace),
			),
		)
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return processed, failed, err
		}

		if runErr := p.processOne(ctx, filepath.Join(inputDir, name), name); runErr != nil {
			p.logger.Error("failed to process file", "file", name, "error", runErr)
			failed++
		} else {
			processed++
		}

		if bar != nil {
			bar.Increment()
		}
	}

	if container != nil {
		container.Wait()
	}

	return processed, failed, nil
}

func (p *Processor) processOne(ctx context.Context, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = p.pipeline.Run(ctx, name, f)
	return err
}
