package http

import (
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"
)

type SummaryHandler struct {
	summarySvc service.SummaryService
}

func NewSummaryHandler(summarySvc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.summarySvc.Summarize(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []domain.OrgGeofenceSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}
