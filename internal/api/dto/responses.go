package dto

import (
	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

// TranscribeResponse is the success payload of POST /transcribe.
type TranscribeResponse struct {
	Success    bool                 `json:"success"`
	Transcript string               `json:"transcript"`
	Analysis   model.AnalysisResult `json:"analysis"`
	SavedTo    string               `json:"saved_to"`
}

// HistoryResponse wraps the history listing of GET /history.
type HistoryResponse struct {
	History []model.HistoryEntry `json:"history"`
}

// HistoryQuery binds the optional limit parameter of GET /history.
type HistoryQuery struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
