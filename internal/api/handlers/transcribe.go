package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parnika15-9/meeting-summarizer/internal/api/dto"
	apierrors "github.com/parnika15-9/meeting-summarizer/internal/api/errors"
	"github.com/parnika15-9/meeting-summarizer/internal/api/middleware"
	"github.com/parnika15-9/meeting-summarizer/internal/app/pipeline"
)

// TranscribeHandler maps the upload endpoint onto the pipeline.
type TranscribeHandler struct {
	pipeline *pipeline.Pipeline
	maxBytes int64
}

// NewTranscribeHandler creates a new transcribe handler.
func NewTranscribeHandler(p *pipeline.Pipeline, maxBytes int64) *TranscribeHandler {
	return &TranscribeHandler{pipeline: p, maxBytes: maxBytes}
}

// Transcribe handles POST /transcribe. It expects a multipart form with the
// audio file under the field name "audio" and returns the transcript plus the
// structured analysis on success.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	if c.Request.ContentLength > h.maxBytes {
		middleware.HandleError(c, apierrors.NewPayloadTooLargeError(h.maxBytes))
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, apierrors.NewNoFileError())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, apierrors.NewInternalError("Failed to read uploaded file"))
		return
	}
	defer src.Close()

	result, err := h.pipeline.Run(c.Request.Context(), fileHeader.Filename, src)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TranscribeResponse{
		Success:    true,
		Transcript: result.Record.Transcript,
		Analysis:   result.Record.Analysis,
		SavedTo:    result.SavedTo,
	})
}
