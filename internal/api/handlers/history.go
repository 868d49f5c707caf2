package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parnika15-9/meeting-summarizer/internal/api/dto"
	"github.com/parnika15-9/meeting-summarizer/internal/api/middleware"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository"
	"github.com/parnika15-9/meeting-summarizer/internal/metrics"
)

// HistoryHandler serves recent analysis records.
type HistoryHandler struct {
	store   repository.RecordStore
	metrics *metrics.Metrics
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store repository.RecordStore, m *metrics.Metrics) *HistoryHandler {
	return &HistoryHandler{store: store, metrics: m}
}

// History handles GET /history, returning up to limit entries (default 10),
// most recent first.
func (h *HistoryHandler) History(c *gin.Context) {
	var query dto.HistoryQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.HistoryRequests.Inc()
	}

	entries, err := h.store.ListRecent(query.Limit)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{History: entries})
}
