package http

import (
	"encoding/json"
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/service"
)

// EvaluateHandler is called by the authentication flow on every login attempt
// for orgs with geofencing configured. DENY is a 200 with allow=false, never
// an error status.
type EvaluateHandler struct {
	evalSvc service.EvaluatorService
}

func NewEvaluateHandler(evalSvc service.EvaluatorService) *EvaluateHandler {
	return &EvaluateHandler{evalSvc: evalSvc}
}

type evaluateBody struct {
	OrgID     int32   `json:"organization_id"`
	Role      string  `json:"role"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}
	if body.OrgID <= 0 {
		writeError(w, domain.NewValidationError("organization_id", "must be a positive integer"))
		return
	}

	decision, err := h.evalSvc.Evaluate(r.Context(), body.OrgID, body.Role, body.Latitude, body.Longitude)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decision)
}
