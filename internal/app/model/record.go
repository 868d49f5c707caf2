package model

// AnalysisRecord is the unit of persistence: one record per pipeline run,
// written once and never updated. Timestamp is the upload timestamp in
// YYYYMMDD_HHMMSS form and doubles as the record identifier.
type AnalysisRecord struct {
	Filename   string         `json:"filename"`
	Timestamp  string         `json:"timestamp"`
	Transcript string         `json:"transcript"`
	Analysis   AnalysisResult `json:"analysis"`
}

// HistoryEntry is the read-only projection of a record used by history
// listings. Summary is truncated to at most 100 characters.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Filename  string `json:"filename"`
	Summary   string `json:"summary"`
}
