// Package pipeline composes intake, transcription, analysis, normalization
// and persistence into the single operation of turning an uploaded audio file
// into a persisted analysis record.
package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	apierrors "github.com/parnika15-9/meeting-summarizer/internal/api/errors"
	"github.com/parnika15-9/meeting-summarizer/internal/app/analysis"
	"github.com/parnika15-9/meeting-summarizer/internal/app/api"
	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository"
	"github.com/parnika15-9/meeting-summarizer/internal/metrics"
)

// Result is the outcome of a successful pipeline run.
type Result struct {
	Record  *model.AnalysisRecord
	SavedTo string
}

// Pipeline orchestrates one upload through store, transcribe, analyze,
// normalize and save. All collaborators are constructor-injected; the
// pipeline itself holds no shared mutable state, so concurrent runs are
// independent.
type Pipeline struct {
	intake      *intake.Intake
	transcriber api.Transcriber
	analyst     api.Analyst
	store       repository.RecordStore
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// New creates a Pipeline. metrics may be nil when no registry is wired, as in
// CLI runs.
func New(
	in *intake.Intake,
	transcriber api.Transcriber,
	analyst api.Analyst,
	store repository.RecordStore,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		intake:      in,
		transcriber: transcriber,
		analyst:     analyst,
		store:       store,
		logger:      logger,
		metrics:     m,
	}
}

// Run executes one pipeline run. Each stage's failure short-circuits the rest
// and propagates with its originating error kind; no record is persisted on
// failure. The stored audio file is retained on disk even when a later stage
// fails, so a run can be replayed manually. A persistence failure after
// successful analysis fails the whole run.
func (p *Pipeline) Run(ctx context.Context, filename string, src io.Reader) (*Result, error) {
	storedPath, timestamp, err := p.intake.Store(filename, src)
	if err != nil {
		p.countRejection(err)
		return nil, p.fail(err)
	}
	// Intake strips any path components from the client filename; the record
	// must name the file exactly as stored.
	filename = filepath.Base(filename)
	log := p.logger.With("timestamp", timestamp, "file", filename)
	log.Info("stored upload", "path", storedPath)

	transcript, err := p.timed(ctx, "transcribe", func(ctx context.Context) (string, error) {
		return p.transcriber.Transcript(ctx, storedPath)
	})
	if err != nil {
		return nil, p.fail(apierrors.NewTranscriptionError(err))
	}
	log.Info("transcription complete", "chars", len(transcript))

	reply, err := p.timed(ctx, "analyze", func(ctx context.Context) (string, error) {
		return p.analyst.Analyze(ctx, transcript)
	})
	if err != nil {
		return nil, p.fail(apierrors.NewCompletionError(err))
	}

	result := analysis.Normalize(reply)
	if result.Fallback() {
		log.Warn("model reply did not parse, using fallback record")
	}

	record := &model.AnalysisRecord{
		Filename:   timestamp + "_" + filename,
		Timestamp:  timestamp,
		Transcript: transcript,
		Analysis:   result,
	}

	savedTo, err := p.store.Save(record)
	if err != nil {
		return nil, p.fail(err)
	}
	log.Info("analysis record saved", "path", savedTo)

	if p.metrics != nil {
		p.metrics.RunsTotal.WithLabelValues("success").Inc()
	}
	return &Result{Record: record, SavedTo: savedTo}, nil
}

// timed runs one collaborator stage, recording its duration.
func (p *Pipeline) timed(ctx context.Context, stage string, fn func(context.Context) (string, error)) (string, error) {
	start := time.Now()
	out, err := fn(ctx)
	if p.metrics != nil {
		p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
	return out, err
}

func (p *Pipeline) fail(err error) error {
	if p.metrics != nil {
		var apiErr *apierrors.APIError
		outcome := string(apierrors.KindInternal)
		if errors.As(err, &apiErr) {
			outcome = string(apiErr.Kind)
		}
		p.metrics.RunsTotal.WithLabelValues(outcome).Inc()
	}
	return err
}

func (p *Pipeline) countRejection(err error) {
	if p.metrics == nil {
		return
	}
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case apierrors.KindEmptyFilename, apierrors.KindInvalidFileType, apierrors.KindPayloadTooLarge:
			p.metrics.UploadsRejected.WithLabelValues(string(apiErr.Kind)).Inc()
		}
	}
}
