package handlers

import (
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type SummaryRecorder interface {
	RecordSummary(success bool)
}

type SummaryHandler struct {
	summaryService *service.SummaryService
	recorder       SummaryRecorder
}

// NewSummaryHandler accepts a nil recorder.
func NewSummaryHandler(summaryService *service.SummaryService, recorder SummaryRecorder) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		recorder:       recorder,
	}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var reqBody models.SummarizeRequest
	if err := decodeBody(r, &reqBody); err != nil {
		writeError(w, r, "Error trying to read the body", err)
		return
	}

	summary, err := h.summaryService.Summarize(r.Context(), reqBody.Text)
	if h.recorder != nil {
		h.recorder.RecordSummary(err == nil)
	}
	if err != nil {
		writeError(w, r, "Error trying to summarize", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
