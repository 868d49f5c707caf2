// Package jsondir persists analysis records as one pretty-printed JSON file
// per run under the transcript directory. The fixed-width timestamp prefix
// makes lexicographic filename order equal to chronological order, so the
// history listing is a reverse directory scan.
package jsondir

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apierrors "github.com/parnika15-9/meeting-summarizer/internal/api/errors"
	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

const recordSuffix = "_analysis.json"

// summaryLimit caps the summary length in history projections.
const summaryLimit = 100

// Store is a filesystem-backed RecordStore.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store writing into dir.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Save writes the record to <dir>/<timestamp>_analysis.json and returns that
// path. Records are never rewritten after a successful save.
func (s *Store) Save(record *model.AnalysisRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apierrors.NewPersistenceError(err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", apierrors.NewPersistenceError(err)
	}

	path := filepath.Join(s.dir, record.Timestamp+recordSuffix)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apierrors.NewPersistenceError(err)
	}

	return path, nil
}

// ListRecent scans the record directory in reverse filename order and
// projects the first limit records to history entries. A record that cannot
// be read or parsed is skipped with a warning; listings may race an in-flight
// writer, so a transient per-file failure is not fatal. Only a failure to
// read the directory itself errors.
func (s *Store) ListRecent(limit int) ([]model.HistoryEntry, error) {
	// Callers outside the HTTP binding (CLI flags) may pass any int.
	if limit <= 0 {
		return []model.HistoryEntry{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.HistoryEntry{}, nil
		}
		return nil, apierrors.NewHistoryReadError(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), recordSuffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	history := make([]model.HistoryEntry, 0, limit)
	for _, name := range names {
		if len(history) >= limit {
			break
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warn("skipping unreadable record", "file", name, "error", err)
			continue
		}

		var record model.AnalysisRecord
		if err := json.Unmarshal(data, &record); err != nil {
			s.logger.Warn("skipping corrupt record", "file", name, "error", err)
			continue
		}

		history = append(history, model.HistoryEntry{
			Timestamp: record.Timestamp,
			Filename:  record.Filename,
			Summary:   truncate(record.Analysis.Summary, summaryLimit),
		})
	}

	return history, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
