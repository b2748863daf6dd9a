package http

import (
	"encoding/json"
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"
)

// ReviewHandler serves the superadmin lifecycle actions: approve, reject,
// stop, reactivate.
type ReviewHandler struct {
	workflowSvc service.WorkflowService
}

func NewReviewHandler(workflowSvc service.WorkflowService) *ReviewHandler {
	return &ReviewHandler{workflowSvc: workflowSvc}
}

type reviewBody struct {
	Action   string `json:"action"`
	Comments string `json:"comments,omitempty"`
}

func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var body reviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	req, err := h.workflowSvc.Review(r.Context(), id, body.Action, body.Comments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *ReviewHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.workflowSvc.StopAccess(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *ReviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.workflowSvc.StartAccess(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
