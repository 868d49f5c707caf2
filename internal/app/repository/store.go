package repository

import (
	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

// RecordStore owns persisted analysis records: one immutable record per
// pipeline run, identified by its timestamp.
type RecordStore interface {
	// Save writes the record and returns the path it was stored at.
	Save(record *model.AnalysisRecord) (string, error)

	// ListRecent returns up to limit history entries, most recent first.
	ListRecent(limit int) ([]model.HistoryEntry, error)
}
